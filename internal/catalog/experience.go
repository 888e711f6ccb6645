package catalog

import (
	"strings"

	"github.com/jinunyachhyon/folio/internal/models"
)

var experiences = []models.Experience{
	{
		ID:       "exp1",
		Role:     "AI Developer",
		Company:  "InsydeAI LLC",
		Location: "Maryland, USA",
		Period:   "2025.01 - Present",
		Description: []string{
			"Developed AI agents for financial calculations, multi-scenario analysis, and automated email drafting.",
			"Cut processing time by 90%+, boosting officer capacity 10×.",
			"Improved response accuracy, consistency, and customer experience.",
		},
		Skills: []string{"AI Agent", "Automation", "NLP", "FastAPI"},
		Logo:   "/logos/insyde_ai_logo.jpeg?height=80&width=80",
	},
	{
		ID:       "exp2",
		Role:     "Research Assistant",
		Company:  "Information and Language Processing Research Lab (ILPRL)",
		Location: "Kavre, Nepal",
		Period:   "2024.07 - 2025.02",
		Description: []string{
			"Collected a 27.5 GB Nepali corpus to address data scarcity for low-resource NLP.",
			"Pretrained BERT, RoBERTa, and GPT-2 with instruction tuning, outperforming prior models on Nep-gLUE by +2 points and notable gains in Nepali text generation quality.",
			"Led design and release of NLUE benchmark with 12 Nepali NLU tasks, setting a new standard for evaluation.",
		},
		Skills: []string{"Data Collection", "Pre-Training", "Benchmarking", "NLP"},
		Logo:   "/logos/KU_Logo.png?height=80&width=80",
	},
	{
		ID:       "exp3",
		Role:     "Research Intern",
		Company:  "Modulo Research Ltd.",
		Location: "Cambridge, UK",
		Period:   "Summer 2024",
		Description: []string{
			"Built a pipeline to automate analysis of 20-min screen recordings with scene change detection at 80% precision via URL tracking.",
			"Extract events and details from video frames using LLMs, iterating prompt engineering for optimal results.",
			"Conducted scalable oversight experiments, comparing LLM outputs with human annotations to improve intent alignment.",
		},
		Skills: []string{"AI Alignment", "LLM Evaluation", "NLP"},
		Logo:   "/logos/Modulo_Research_logo.png?height=80&width=80",
	},
	{
		ID:       "exp4",
		Role:     "ML Engineer",
		Company:  "Virtly IT & Business Solutions Sarl (ICEBRKR)",
		Location: "Geneva, Switzerland",
		Period:   "2024.03 - 2024.09",
		Description: []string{
			"Finetuned LLMs for dialogue summarization and cross-application prioritization of tasks.",
			"Achieved ROUGE-L >50, implying very high overlap with human summaries.",
			"Built an algorithm to resolve online meeting scheduling conflicts by suggesting optimal time slots.",
		},
		Skills: []string{"NLP", "Finetuning", "Productivity AI"},
		Logo:   "/logos/icebrkr_logo.png?height=80&width=80",
	},
	{
		ID:       "exp5",
		Role:     "ML/CV Engineer",
		Company:  "LogicTronix",
		Location: "Lalitpur, Nepal",
		Period:   "2023.06 - 2024.03",
		Description: []string{
			"Integrated and optimized SFA3D in the ADAS stack, achieving real-time 3D object detection, ~20 FPS on embedded platforms.",
			"Implemented Deep Learning CV algorithms for real-time 2D object detection and tracking, ~50 FPS.",
			"Reduced model size by 60%+ via quantization for Xilinx FPGA, boosting edge inference efficiency.",
		},
		Skills: []string{"Computer Vision", "Object Detection", "Quantization"},
		Logo:   "/logos/Logictronix-Logo.png?height=80&width=80",
	},
}

var projects = []models.Project{
	{
		ID:           "proj1",
		Title:        "NLUE Benchmark",
		Description:  "A comprehensive evaluation suite for Nepali language understanding, featuring 12 diverse NLU tasks across classification, similarity, paraphrase, inference, and masked language tasks, designed to advance research in low-resource NLP.",
		Technologies: []string{"NLU", "NLP Evaluation", "Benchmarking"},
		Link:         "https://huggingface.co/collections/IRIIS-RESEARCH/nepali-lanuguage-understanding-evaluation-benchmark-68592c0105fe37d5d97629d4",
	},
	{
		ID:           "proj2",
		Title:        "CV Models Quantization for Edge Devices",
		Description:  "A tutorial on quantizing computer vision models for efficient edge deployment, covering model implementation and optimization in PyTorch, and quantization techniques for DPU (Deep Processing Unit) inference using Vitis AI.",
		Technologies: []string{"PyTorch", "Quantization", "C++", "Vitis AI"},
		Link:         "https://github.com/LogicTronix/Vitis-AI-Reference-Tutorials",
	},
	{
		ID:           "proj3",
		Title:        "Drug Target Integration",
		Description:  "Our model predicts binding affinity across a diverse set of drugs and target groups. Drug-target interaction prediction task aims to predict the interaction activity score in silico given only the accessible compound structural information and protein amino acid sequence.",
		Technologies: []string{"DeepPurpose", "DTI", "Bioinformatics"},
		Link:         "https://github.com/jinunyachhyon/Drug-Target-Integration",
	},
}

// Experiences returns every role, most recent first.
func Experiences() []models.Experience {
	out := make([]models.Experience, len(experiences))
	copy(out, experiences)
	return out
}

// Projects returns the side projects in display order.
func Projects() []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	return out
}

// Skills returns every skill used by a role, deduplicated and sorted.
func Skills() []string {
	set := make(map[string]struct{})
	for _, e := range experiences {
		for _, s := range e.Skills {
			set[s] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// SearchExperience returns the roles matching query that carry any of
// skills. Empty arguments do not filter.
func SearchExperience(query string, skills []string) []models.Experience {
	out := make([]models.Experience, 0, len(experiences))
	for _, e := range experiences {
		if MatchesExperience(e, query, skills) {
			out = append(out, e)
		}
	}
	return out
}

// MatchesExperience reports whether query is a case-insensitive substring of
// the role, company, a description line or a skill of e, and whether e has
// any of skills.
func MatchesExperience(e models.Experience, query string, skills []string) bool {
	if q := strings.ToLower(query); q != "" {
		hit := containsFold(e.Role, q) || containsFold(e.Company, q)
		for _, d := range e.Description {
			hit = hit || containsFold(d, q)
		}
		for _, s := range e.Skills {
			hit = hit || containsFold(s, q)
		}
		if !hit {
			return false
		}
	}
	return len(skills) == 0 || anyIn(e.Skills, skills)
}
