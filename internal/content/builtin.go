package content

import (
	"time"

	"github.com/jinunyachhyon/folio/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const transformersSeries = "Understanding Transformers"

const transformersSeriesDescription = "A comprehensive deep-dive into Transformer architecture and its applications"

// BuiltinPosts returns the posts served when no content directory is
// available. Every field is populated, so no defaults are applied.
func BuiltinPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			Slug:        "introduction-to-deep-learning",
			Title:       "Introduction to Deep Learning",
			Date:        day(2023, time.June, 15),
			Tags:        []string{"Deep Learning", "AI", "Machine Learning"},
			Author:      "Jane Doe",
			Excerpt:     "A comprehensive introduction to deep learning concepts and applications.",
			ReadingTime: "8 min read",
			Content: `# Introduction to Deep Learning

Deep learning has revolutionized the field of artificial intelligence in recent years, enabling remarkable advances in computer vision, natural language processing, and many other domains.

## What is Deep Learning?

Deep learning is a subset of machine learning that uses neural networks with multiple layers (hence "deep") to analyze various factors of data. Unlike traditional machine learning algorithms, deep learning models can automatically discover the representations needed for feature detection or classification from raw data.

### Key Concepts

- **Neural Networks**: Inspired by the human brain, these are the backbone of deep learning
- **Backpropagation**: The algorithm used to calculate gradients for learning
- **Activation Functions**: Non-linear functions that help neural networks learn complex patterns

## Common Architectures

### Convolutional Neural Networks (CNNs)

CNNs are primarily used for image processing and computer vision tasks. Their architecture is designed to automatically and adaptively learn spatial hierarchies of features through backpropagation.

### Recurrent Neural Networks (RNNs)

RNNs are used for sequential data like time series or natural language. They have "memory" that captures information about what has been calculated so far.

### Transformers

Transformers have revolutionized natural language processing with their attention mechanisms, enabling models like BERT and GPT to achieve state-of-the-art results.

## Applications

- **Computer Vision**: Object detection, image segmentation, facial recognition
- **Natural Language Processing**: Translation, summarization, sentiment analysis
- **Speech Recognition**: Converting spoken language to text
- **Game Playing**: Defeating human champions in chess, Go, and video games

## Challenges and Future Directions

Despite its successes, deep learning faces several challenges:

1. **Data Efficiency**: Deep models typically require large amounts of labeled data
2. **Interpretability**: Understanding why models make certain decisions is difficult
3. **Robustness**: Small changes to inputs can dramatically change outputs
4. **Energy Consumption**: Training large models requires significant computational resources

Researchers are actively working on addressing these challenges to make deep learning more accessible, efficient, and trustworthy.

## Conclusion

Deep learning continues to push the boundaries of what's possible in artificial intelligence. As algorithms improve and hardware becomes more powerful, we can expect even more impressive applications in the coming years.`,
		},
		{
			Slug:        "reinforcement-learning-explained",
			Title:       "Reinforcement Learning Explained",
			Date:        day(2023, time.July, 22),
			Tags:        []string{"Reinforcement Learning", "AI", "Machine Learning"},
			Author:      "Jane Doe",
			Excerpt:     "Understanding the fundamentals of reinforcement learning and its applications.",
			ReadingTime: "12 min read",
			Content: `# Reinforcement Learning Explained

Reinforcement Learning (RL) is a type of machine learning where an agent learns to make decisions by taking actions in an environment to maximize some notion of cumulative reward.

## Fundamental Concepts

### The RL Framework

At its core, reinforcement learning involves:

- **Agent**: The learner or decision maker
- **Environment**: What the agent interacts with
- **Actions**: What the agent can do
- **States**: The situations the agent finds itself in
- **Rewards**: Feedback signals from the environment

### Key Elements

- **Policy**: The agent's strategy or behavior function
- **Value Function**: Estimates how good a state or action is
- **Model**: The agent's representation of the environment

## Major Approaches

### Value-Based Methods

Value-based methods focus on estimating the value of states or state-action pairs. Key algorithms include:

- **Q-Learning**: Learns the value of actions in states
- **Deep Q-Networks (DQN)**: Combines Q-learning with deep neural networks

### Policy-Based Methods

Policy-based methods directly optimize the policy without using a value function:

- **Policy Gradients**: Updates policy parameters in the direction of greater reward
- **Actor-Critic**: Combines value-based and policy-based approaches

## Advanced Topics

### Exploration vs. Exploitation

A key challenge in RL is balancing exploration (trying new actions) and exploitation (using known good actions):

- **ε-greedy**: Choose random actions with probability ε
- **Boltzmann Exploration**: Choose actions with probability related to their estimated values
- **Thompson Sampling**: Sample from posterior distributions of action values

### Function Approximation

In complex environments, tables cannot represent all state-action values, so we use:

- Neural networks
- Decision trees
- Linear function approximation

## Applications

Reinforcement learning has achieved remarkable results in various domains:

- **Games**: Chess, Go, Poker, StarCraft, Dota
- **Robotics**: Manipulation, locomotion, navigation
- **Resource Management**: Data center cooling, traffic light control
- **Healthcare**: Treatment recommendations, drug discovery

## Challenges and Future Directions

RL faces several challenges:

1. **Sample Efficiency**: RL algorithms often require many interactions
2. **Generalization**: Transferring knowledge to new situations
3. **Reward Design**: Specifying rewards that lead to desired behavior
4. **Safety**: Ensuring agents behave safely during learning and deployment

Researchers are working on multi-agent RL, hierarchical RL, and combining RL with other learning paradigms to address these challenges.

## Conclusion

Reinforcement learning represents a powerful approach to developing autonomous systems that can learn to make decisions in complex, uncertain environments. As algorithms improve and computational resources increase, we can expect RL to play an increasingly important role in artificial intelligence applications.`,
		},
		{
			Slug:        "evolution-of-computer-vision",
			Title:       "The Evolution of Computer Vision",
			Date:        day(2023, time.August, 10),
			Tags:        []string{"Computer Vision", "AI", "Deep Learning"},
			Author:      "Jane Doe",
			Excerpt:     "Tracing the history and advancements in computer vision technology.",
			ReadingTime: "15 min read",
			Content: `# The Evolution of Computer Vision

Computer vision has transformed from a niche academic field to a technology that powers everything from facial recognition to autonomous vehicles. This post traces its remarkable evolution.

## Early Beginnings (1950s-1970s)

The journey of computer vision began in the 1950s with simple pattern recognition systems. Early researchers faced fundamental questions:

- How do we represent images in a computer?
- How do we extract meaningful information from pixel values?
- Can computers understand 3D structure from 2D images?

### Key Developments

- **Block World (1963)**: Larry Roberts' PhD thesis demonstrated 3D reconstruction from 2D images
- **Edge Detection (1970)**: John Canny developed algorithms for finding boundaries in images
- **Representation Schemes**: Development of various ways to represent visual information

## Classical Approaches (1980s-2000s)

The field matured with more sophisticated algorithms and models:

- **Feature Extraction**: SIFT, SURF, and HOG for identifying distinctive elements
- **Statistical Models**: Using probability to handle uncertainty in vision
- **Deformable Models**: Representing objects that can change shape
- **Structure from Motion**: Reconstructing 3D scenes from multiple views

### Challenges

Despite progress, computer vision systems were:
- Brittle to changes in lighting, viewpoint, and occlusion
- Limited by hand-crafted features
- Computationally expensive
- Struggling with semantic understanding

## Deep Learning Revolution (2010s-Present)

Everything changed in 2012 when AlexNet won the ImageNet competition using convolutional neural networks (CNNs):

### Breakthrough Architectures

- **AlexNet (2012)**: First CNN to win ImageNet, dramatically reducing error rates
- **VGG, GoogLeNet, ResNet**: Increasingly deep architectures with better performance
- **R-CNN Family**: Object detection networks
- **U-Net**: Semantic segmentation network
- **GANs**: Generating realistic images
- **Transformers**: Vision transformers rivaling CNNs

### Capabilities

Modern computer vision systems can:
- Recognize thousands of object categories
- Detect and localize multiple objects in real-time
- Generate photorealistic images
- Understand 3D scene structure
- Perform human pose estimation
- Recognize actions and activities

## Applications

The impact of computer vision spans numerous domains:

### Consumer Technology
- Facial recognition for device unlocking
- Photo organization and enhancement
- AR filters and effects

### Transportation
- Autonomous vehicles
- Traffic monitoring
- Driver assistance systems

### Healthcare
- Medical image analysis
- Disease diagnosis
- Surgical assistance

### Retail
- Cashierless stores
- Inventory management
- Visual search

## Future Directions

The field continues to evolve rapidly:

- **Multimodal Learning**: Combining vision with language and other modalities
- **Self-Supervised Learning**: Reducing reliance on labeled data
- **Neural Rendering**: Creating photorealistic 3D scenes
- **Embodied AI**: Vision for agents that act in the physical world
- **Energy Efficiency**: Reducing the computational cost of vision systems

## Conclusion

From its humble beginnings to today's sophisticated deep learning systems, computer vision has undergone a remarkable transformation. As algorithms continue to improve and hardware becomes more powerful, we can expect computer vision to become increasingly integrated into our daily lives, enabling new applications that were once confined to science fiction.`,
		},
		{
			Slug:        "ethical-considerations-in-ai",
			Title:       "Ethical Considerations in AI Research",
			Date:        day(2023, time.September, 5),
			Tags:        []string{"AI Ethics", "Research", "Responsible AI"},
			Author:      "Jane Doe",
			Excerpt:     "Exploring the ethical challenges and responsibilities in artificial intelligence research.",
			ReadingTime: "10 min read",
			Content: `# Ethical Considerations in AI Research

As artificial intelligence becomes increasingly powerful and pervasive, the ethical implications of our research and development choices grow in importance. This post explores key ethical considerations that AI researchers should keep in mind.

## Why AI Ethics Matters

AI systems are being deployed in high-stakes domains including healthcare, criminal justice, hiring, and financial services. Poor design choices or inadequate consideration of potential harms can lead to:

- Perpetuation or amplification of societal biases
- Invasion of privacy
- Concentration of power
- Displacement of human labor
- Safety risks

## Key Ethical Challenges

### Fairness and Bias

AI systems learn from data that may contain historical biases:

- **Representational Harm**: When systems reinforce stereotypes
- **Allocational Harm**: When resources or opportunities are unfairly distributed
- **Quality of Service**: When systems perform better for some groups than others

#### Approaches to Address Bias:
- Diverse and representative training data
- Algorithmic fairness techniques
- Regular auditing for disparate impact

### Privacy and Surveillance

AI enables unprecedented capabilities for surveillance and data analysis:

- **Data Collection**: How much data should we collect, and with what consent?
- **Inference Capabilities**: Systems can infer sensitive attributes not explicitly shared
- **Anonymization Limitations**: Many "anonymized" datasets can be de-anonymized

#### Privacy-Preserving Approaches:
- Federated learning
- Differential privacy
- Minimizing data collection

### Transparency and Explainability

Complex AI systems often function as "black boxes":

- **Interpretability**: Can humans understand how decisions are made?
- **Accountability**: Who is responsible when systems cause harm?
- **Right to Explanation**: Should affected individuals be able to understand decisions?

#### Techniques for Transparency:
- Inherently interpretable models
- Post-hoc explanation methods
- Model cards and datasheets

### Autonomy and Human Oversight

As systems become more autonomous, questions arise about appropriate human control:

- **Meaningful Human Control**: Ensuring humans can intervene when necessary
- **Value Alignment**: Making systems that reflect human values and intentions
- **Decision Authority**: Determining which decisions should remain with humans

## Responsible Research Practices

### Before Research Begins
- Consider potential dual-use applications
- Engage with diverse stakeholders
- Establish ethical guidelines for the project

### During Research
- Document choices and their ethical implications
- Test for potential harms across diverse populations
- Be transparent about limitations

### After Research
- Publish negative results and limitations
- Consider restricted release for high-risk capabilities
- Monitor deployed systems for unexpected behaviors

## Institutional Approaches

Individual researchers can only do so much. Institutional approaches include:

- **Ethics Review Boards**: Similar to IRBs for human subjects research
- **Ethics Training**: Educating researchers about ethical considerations
- **Diversity and Inclusion**: Ensuring diverse perspectives in research teams
- **Industry Standards**: Developing shared norms and best practices

## Looking Forward

The field of AI ethics continues to evolve rapidly. Key areas of development include:

- More rigorous methods for fairness evaluation
- Better techniques for explaining complex models
- Regulatory frameworks for high-risk AI applications
- Global coordination on AI governance

## Conclusion

Ethical considerations should not be an afterthought in AI research but integrated throughout the research process. By carefully considering the potential impacts of our work, engaging with diverse stakeholders, and implementing responsible practices, we can develop AI systems that benefit humanity while minimizing harm.`,
		},
		{
			Slug:        "multimodal-learning",
			Title:       "Advances in Multimodal Learning",
			Date:        day(2023, time.October, 12),
			Tags:        []string{"Multimodal Learning", "Vision-Language", "Deep Learning"},
			Author:      "Jane Doe",
			Excerpt:     "Exploring recent advances in multimodal learning and how AI systems are becoming better at understanding multiple forms of data.",
			ReadingTime: "14 min read",
			Content: `# Advances in Multimodal Learning

Multimodal learning refers to AI systems that can process and relate information from multiple sources or modalities, such as text, images, audio, and video. This field has seen tremendous growth in recent years, leading to AI models with increasingly sophisticated understanding of the world.

## Why Multimodal Learning Matters

Humans naturally perceive the world through multiple senses simultaneously, integrating information from vision, hearing, touch, and other sensory inputs. To create AI systems with human-like understanding, they need to similarly process and relate information across modalities.

Key advantages of multimodal systems include:

- **Robustness**: Information from different modalities can compensate for noise or missing data
- **Complementary Information**: Different modalities often provide complementary details (e.g., image + text)
- **Emergent Capabilities**: The combination of modalities enables capabilities not possible with single-modality systems

## Recent Advances

### Vision-Language Models

Vision-language models represent one of the most active areas in multimodal learning:

- **CLIP (Contrastive Language-Image Pre-training)**: OpenAI's CLIP demonstrated remarkable zero-shot capabilities by learning from 400 million image-text pairs from the internet
- **DALL-E, Stable Diffusion, Midjourney**: Text-to-image models that can generate high-quality images from natural language descriptions
- **GPT-4V**: Multimodal large language models that can understand and reason about images alongside text

### Audio-Visual Learning

Audio-visual learning combines auditory and visual information:

- **Audio-Visual Speech Recognition**: Systems that combine lip reading with audio for more robust speech recognition
- **Sound Source Localization**: Models that can identify which objects in a video are producing sounds
- **Cross-Modal Generation**: Converting audio to corresponding visuals and vice versa

### Multimodal Transformers

Transformer architectures have been extended to handle multiple modalities:

- **PerceiverIO**: A general architecture for handling arbitrary modalities with a fixed latent space
- **MBT (Multimodal Bottleneck Transformer)**: Uses modality-specific encoders with a shared bottleneck
- **Flamingo**: A few-shot learning model that can process interleaved sequences of images and text

## Technical Challenges

### Cross-Modal Alignment

A fundamental challenge is aligning representations across modalities:

- **Shared Embedding Spaces**: Creating common spaces where similar concepts from different modalities are close
- **Attention Mechanisms**: Learning which parts of one modality correspond to parts of another
- **Contrastive Learning**: Using pairs of related cross-modal data to learn aligned representations

### Modality Fusion

Effectively combining information from different modalities:

- **Early Fusion**: Combining raw inputs before processing
- **Late Fusion**: Combining separately processed modality-specific features
- **Hierarchical Fusion**: Fusing at multiple levels of abstraction

### Transfer Learning

Leveraging knowledge from one modality to help with another:

- **Cross-Modal Transfer**: Using knowledge from one modality to improve performance in another
- **Domain Adaptation**: Adapting models to work on new combinations of modalities
- **Few-Shot Learning**: Learning from limited examples in a new modality

## Applications

### Healthcare

- **Multimodal Medical Diagnosis**: Combining imaging (X-rays, MRIs), patient records, and lab results
- **Rehabilitation Systems**: Using visual and auditory feedback for physical therapy
- **Mental Health Monitoring**: Analyzing speech patterns, facial expressions, and text for signs of depression or anxiety

### Autonomous Vehicles

- **Sensor Fusion**: Combining camera, lidar, radar, and ultrasonic sensor data
- **Scene Understanding**: Interpreting road conditions, signs, and pedestrian intentions
- **Multimodal Navigation**: Using visual cues alongside map data

### Accessibility

- **Sign Language Translation**: Converting between sign language videos and text/speech
- **Assistive Technologies**: Creating systems that provide alternative sensory feedback
- **Content Description**: Automatically describing images or videos for visually impaired users

## Future Directions

The field continues to advance rapidly with several promising directions:

- **Embodied Multimodal Learning**: Combining perception with action in physical or virtual environments
- **Compositional Reasoning**: Better understanding relationships between entities across modalities
- **Self-Supervised Learning**: Reducing reliance on paired data through self-supervision
- **Multimodal Few-Shot Learning**: Adapting to new tasks with minimal examples
- **Efficient Multimodal Models**: Reducing computational requirements for multimodal processing

## Conclusion

Multimodal learning represents a crucial frontier in artificial intelligence, moving us closer to systems that can perceive and understand the world in ways similar to humans. As models become more sophisticated in integrating information across modalities, we can expect increasingly powerful applications that combine the strengths of different types of data to solve complex problems.`,
		},
		{
			Slug:        "transformers-part-1-attention",
			Title:       "Understanding Transformers: Part 1 - The Attention Mechanism",
			Date:        day(2023, time.November, 1),
			Tags:        []string{"Transformers", "Deep Learning", "NLP", "Attention"},
			Author:      "Jane Doe",
			Excerpt:     "First part of our comprehensive series on Transformers, focusing on the revolutionary attention mechanism.",
			ReadingTime: "10 min read",
			Series: &models.Series{
				Name:        transformersSeries,
				Part:        1,
				Description: transformersSeriesDescription,
			},
			Content: `# Understanding Transformers: Part 1 - The Attention Mechanism

Welcome to the first part of our comprehensive series on Transformers! In this series, we'll explore one of the most revolutionary architectures in deep learning that has transformed natural language processing and beyond.

## Introduction to the Series

Transformers have become the backbone of modern AI systems, powering everything from GPT to BERT to vision models. This series will take you through:

1. **Part 1**: The Attention Mechanism (this post)
2. **Part 2**: Multi-Head Attention and Self-Attention
3. **Part 3**: The Complete Transformer Architecture
4. **Part 4**: Training and Optimization Techniques
5. **Part 5**: Applications Beyond NLP

## What is Attention?

The attention mechanism is the core innovation that makes Transformers so powerful. Before attention, neural networks processed sequences sequentially, which created bottlenecks and made it difficult to capture long-range dependencies.

### The Problem with Sequential Processing

Traditional RNNs and LSTMs process sequences one element at a time:

- Information from early tokens can get lost (vanishing gradient problem)
- Processing is inherently sequential, making parallelization difficult
- Long-range dependencies are hard to capture

### The Attention Solution

Attention allows the model to directly connect any two positions in a sequence, regardless of their distance. This enables:

- **Parallel processing**: All positions can be computed simultaneously
- **Long-range dependencies**: Direct connections between distant tokens
- **Interpretability**: We can visualize what the model is "paying attention" to

## Mathematical Foundation

The attention mechanism can be formulated as a function that maps queries, keys, and values to an output.

Where:
- **Q (Query)**: What we're looking for
- **K (Key)**: What we're looking in
- **V (Value)**: The actual content we want to retrieve
- **d_k**: Dimension of the key vectors (for scaling)

### Step-by-Step Breakdown

1. **Compute Attention Scores**: QK^T gives us similarity scores between queries and keys
2. **Scale**: Divide by sqrt(d_k) to prevent extremely large values
3. **Normalize**: Apply softmax to get attention weights that sum to 1
4. **Weighted Sum**: Multiply attention weights with values to get the output

## Intuitive Understanding

Think of attention like a database lookup:

- **Query**: "What information do I need?"
- **Keys**: "What information is available?"
- **Values**: "Here's the actual information"

The attention mechanism finds the most relevant information (high attention weights) and combines it proportionally.

## Types of Attention

### 1. Self-Attention
- Queries, keys, and values all come from the same sequence
- Allows tokens to attend to other tokens in the same sequence
- Crucial for understanding context and relationships

### 2. Cross-Attention
- Queries come from one sequence, keys and values from another
- Used in encoder-decoder architectures
- Enables translation and other sequence-to-sequence tasks

### 3. Masked Attention
- Prevents tokens from attending to future positions
- Essential for autoregressive generation (like GPT)
- Maintains the causal structure of language

## Advantages of Attention

1. **Parallelization**: Unlike RNNs, attention can be computed in parallel
2. **Long-range Dependencies**: Direct connections between any two positions
3. **Interpretability**: Attention weights show what the model focuses on
4. **Flexibility**: Can handle variable-length sequences naturally

## What's Next?

In the next part of our series, we'll explore how multiple attention heads work together in multi-head attention, and how self-attention enables Transformers to understand context in unprecedented ways.

We'll cover:
- Multi-head attention mechanism
- How different heads capture different types of relationships
- The role of positional encoding
- Self-attention in practice

## Conclusion

The attention mechanism represents a fundamental shift in how we think about sequence modeling. By allowing direct connections between any two positions, attention enables the parallel processing and long-range understanding that makes Transformers so powerful.

Understanding attention is crucial for grasping how modern AI systems work, from language models to vision transformers. In our next post, we'll build on this foundation to explore multi-head attention and self-attention in detail.`,
		},
		{
			Slug:        "transformers-part-2-multihead-attention",
			Title:       "Understanding Transformers: Part 2 - Multi-Head Attention and Self-Attention",
			Date:        day(2023, time.November, 8),
			Tags:        []string{"Transformers", "Deep Learning", "NLP", "Attention"},
			Author:      "Jane Doe",
			Excerpt:     "Second part of our Transformers series, diving deep into multi-head attention and self-attention mechanisms.",
			ReadingTime: "12 min read",
			Series: &models.Series{
				Name:        transformersSeries,
				Part:        2,
				Description: transformersSeriesDescription,
			},
			Content: `# Understanding Transformers: Part 2 - Multi-Head Attention and Self-Attention

Welcome back to our Transformers series! In Part 1, we explored the fundamental attention mechanism. Now, let's dive deeper into multi-head attention and self-attention - the key innovations that make Transformers so powerful.

## Recap: The Attention Foundation

In our previous post, we learned that attention allows models to:
- Process sequences in parallel
- Capture long-range dependencies
- Focus on relevant information dynamically

Now we'll see how Transformers extend this concept to capture multiple types of relationships simultaneously.

## Multi-Head Attention

### The Core Idea

Instead of using a single attention mechanism, Transformers use multiple "attention heads" in parallel. Each head can focus on different types of relationships:

- **Head 1**: Might focus on syntactic relationships (subject-verb)
- **Head 2**: Might capture semantic similarities
- **Head 3**: Might attend to positional patterns
- **Head 4**: Might focus on long-range dependencies

### Mathematical Formulation

Multi-head attention works by:

1. **Linear Projections**: Transform input into multiple Q, K, V representations
2. **Parallel Attention**: Apply attention mechanism to each head
3. **Concatenation**: Combine outputs from all heads
4. **Final Projection**: Transform concatenated result

### Why Multiple Heads?

Different heads can specialize in different aspects:

- **Linguistic relationships**: Grammar, syntax, semantics
- **Positional patterns**: Local vs. global dependencies
- **Content types**: Entities, actions, modifiers
- **Abstraction levels**: Surface form vs. meaning

## Self-Attention: The Game Changer

### What is Self-Attention?

Self-attention is when the queries, keys, and values all come from the same sequence. This allows each position to attend to all positions in the same sequence, including itself.

### Why Self-Attention Matters

1. **Context Understanding**: Each word can see the entire sentence context
2. **Relationship Modeling**: Captures dependencies between any two words
3. **Parallel Processing**: All relationships computed simultaneously
4. **Dynamic Weighting**: Attention changes based on context

### Self-Attention in Action

Consider the sentence: "The animal didn't cross the street because it was too tired."

Self-attention helps the model understand that "it" refers to "animal" by:
1. Computing attention scores between "it" and all other words
2. Finding high similarity with "animal"
3. Using this information for better representation

## Positional Encoding

### The Position Problem

Since attention doesn't inherently understand order, we need to inject positional information. Transformers use positional encoding to give the model a sense of sequence order.

### Sinusoidal Positional Encoding

The original Transformer uses sinusoidal functions with nice properties:
- Unique encoding for each position
- Relative position information
- Extrapolation to longer sequences

## Attention Patterns in Practice

Research has shown that different attention heads learn different patterns:

### Syntactic Heads
- Focus on grammatical relationships
- Subject-verb, verb-object connections
- Dependency parsing-like patterns

### Semantic Heads
- Attend to semantically similar words
- Coreference resolution (pronouns to entities)
- Thematic role assignment

### Positional Heads
- Focus on relative positions
- Local vs. global attention patterns
- Sequential dependencies

## Computational Complexity

### Time Complexity
- Self-attention: O(n²d) where n is sequence length, d is model dimension
- This quadratic scaling is the main limitation for very long sequences

### Memory Complexity
- Attention matrix: O(n²) memory for each head
- Total: O(h × n²) where h is number of heads

### Optimization Strategies
- **Sparse attention**: Only attend to subset of positions
- **Linear attention**: Approximate attention with linear complexity
- **Sliding window**: Local attention patterns

## What's Next?

In Part 3, we'll put everything together to understand the complete Transformer architecture:

- Encoder and decoder stacks
- Layer normalization and residual connections
- Feed-forward networks
- How all components work together

We'll also explore different Transformer variants and their specific use cases.

## Key Takeaways

1. **Multi-head attention** allows capturing multiple types of relationships simultaneously
2. **Self-attention** enables rich context understanding within sequences
3. **Positional encoding** provides sequence order information
4. **Different heads specialize** in different linguistic and semantic patterns
5. **Quadratic complexity** is the main computational challenge

Understanding multi-head self-attention is crucial for grasping how Transformers achieve their remarkable performance across various tasks.`,
		},
		{
			Slug:        "transformers-part-3-architecture",
			Title:       "Understanding Transformers: Part 3 - The Complete Architecture",
			Date:        day(2023, time.November, 15),
			Tags:        []string{"Transformers", "Deep Learning", "NLP", "Architecture"},
			Author:      "Jane Doe",
			Excerpt:     "Third part of our Transformers series, exploring the complete architecture including encoders, decoders, and all the components working together.",
			ReadingTime: "15 min read",
			Series: &models.Series{
				Name:        transformersSeries,
				Part:        3,
				Description: transformersSeriesDescription,
			},
			Content: `# Understanding Transformers: Part 3 - The Complete Architecture

Welcome to Part 3 of our Transformers series! We've covered the attention mechanism and multi-head self-attention. Now let's see how all the pieces fit together in the complete Transformer architecture.

## The Big Picture

The original Transformer consists of two main components:
1. **Encoder**: Processes the input sequence
2. **Decoder**: Generates the output sequence

Each component is built from stacked layers, and each layer contains multiple sub-components working together.

## Encoder Architecture

### Encoder Layer Components

Each encoder layer contains:
1. **Multi-Head Self-Attention**
2. **Position-wise Feed-Forward Network**
3. **Residual Connections**
4. **Layer Normalization**

### The Flow Through an Encoder Layer

1. **Input**: Token embeddings + positional encoding
2. **Self-Attention**: Multi-head self-attention mechanism
3. **Add & Norm**: Residual connection + layer normalization
4. **Feed-Forward**: Position-wise feed-forward network
5. **Add & Norm**: Another residual connection + layer normalization
6. **Output**: Enhanced representations

### Position-wise Feed-Forward Network

Each position gets processed independently through:
- Linear transformation
- ReLU activation
- Another linear transformation

This adds non-linearity and allows the model to process information at each position.

## Decoder Architecture

### Decoder Layer Components

Each decoder layer contains:
1. **Masked Multi-Head Self-Attention**
2. **Multi-Head Cross-Attention** (encoder-decoder attention)
3. **Position-wise Feed-Forward Network**
4. **Residual Connections and Layer Normalization**

### Masked Self-Attention

The decoder uses **masked self-attention** to prevent positions from attending to subsequent positions. This maintains the autoregressive property needed for generation.

### Cross-Attention

Cross-attention allows the decoder to attend to the encoder's output:
- **Queries**: Come from the decoder
- **Keys and Values**: Come from the encoder
- This enables the decoder to access input information while generating

## Key Architectural Components

### 1. Residual Connections

Residual connections help with:
- **Gradient flow**: Prevents vanishing gradients in deep networks
- **Training stability**: Makes optimization easier
- **Information preservation**: Allows information to flow directly

### 2. Layer Normalization

Applied after each sub-layer:
- Normalizes activations across the feature dimension
- Stabilizes training
- Reduces internal covariate shift

### 3. Positional Encoding

Added to input embeddings to provide position information:
- Sinusoidal encoding in the original paper
- Learned positional embeddings in many implementations
- Relative positional encoding in some variants

## The Complete Data Flow

### Training (Teacher Forcing)

1. **Input Processing**:
   - Tokenize input and target sequences
   - Add positional encoding
   - Apply dropout

2. **Encoder Processing**:
   - Process input through encoder stack
   - Generate contextualized representations

3. **Decoder Processing**:
   - Process target sequence (shifted right)
   - Use masked self-attention
   - Apply cross-attention to encoder output
   - Generate predictions

4. **Loss Calculation**:
   - Compare predictions with target
   - Compute cross-entropy loss
   - Backpropagate gradients

### Inference (Autoregressive Generation)

1. **Encoder**: Process input sequence once
2. **Decoder**: Generate tokens one by one
   - Start with special start token
   - Use previously generated tokens as input
   - Apply beam search or sampling for generation

## Transformer Variants

### Encoder-Only Models
- **BERT**: Bidirectional encoder for understanding tasks
- **RoBERTa**: Optimized BERT training
- **DeBERTa**: Enhanced position encoding

### Decoder-Only Models
- **GPT**: Autoregressive generation
- **GPT-2/3/4**: Scaled-up versions
- **PaLM**: Pathways Language Model

### Encoder-Decoder Models
- **T5**: Text-to-Text Transfer Transformer
- **BART**: Denoising autoencoder
- **mT5**: Multilingual T5

## Design Choices and Trade-offs

### Model Size
- **Parameters**: More parameters → better performance but higher cost
- **Layers**: Deeper models can capture more complex patterns
- **Hidden size**: Wider models have more representational capacity

### Attention Heads
- **Number of heads**: More heads → more diverse attention patterns
- **Head size**: Larger heads → more capacity per head
- **Trade-off**: Total parameters remain constant

### Sequence Length
- **Quadratic complexity**: Longer sequences → quadratically more computation
- **Memory requirements**: Attention matrices grow quadratically
- **Solutions**: Sparse attention, linear attention, hierarchical models

## Key Takeaways

1. **Modular design**: Transformers are built from reusable components
2. **Residual connections**: Essential for training deep networks
3. **Layer normalization**: Stabilizes training and improves convergence
4. **Encoder-decoder structure**: Flexible for various tasks
5. **Autoregressive generation**: Enables text generation capabilities

The complete Transformer architecture elegantly combines all these components to create a powerful and flexible model that has revolutionized natural language processing and beyond.`,
		},
	}
}
