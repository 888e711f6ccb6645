package mcpserver

// PostFormatContract describes the Markdown post format read from the
// content directory.
const PostFormatContract = `# Folio Post Format

Every blog post is one Markdown file in the content directory. The file
name without its extension is the post slug: ` + "`" + `transformers-part-1.md` + "`" + `
is served at ` + "`" + `/blog/transformers-part-1` + "`" + `.

## Structure

` + "```" + `markdown
---
title: Understanding Transformers    # title; defaults to "Untitled (<slug>)"
date: 2024-03-10                     # YYYY-MM-DD; defaults to today
excerpt: One or two sentences.       # defaults to the first 200 characters
author: Jane Doe                     # defaults to "Unknown Author"
tags:                                # YAML list or comma-separated string
  - Deep Learning
  - NLP
coverImage: /images/cover.png        # optional
series:                              # optional; all three keys
  name: Understanding Transformers
  part: 1
  description: A deep dive into transformer models.
---

Body text in standard Markdown.
` + "```" + `

## Rules

1. The ` + "`" + `---` + "`" + ` fences must open the file. Without them the whole file is
   the body and every field takes its default.
2. Invalid YAML does not reject the post: the front matter is ignored.
3. Reading time is computed from the body at 200 words per minute.
4. Parts of a series are ordered by ` + "`" + `part` + "`" + `. Two posts must not share a
   series name and part number.
5. Headings (` + "`" + `#` + "`" + ` through ` + "`" + `######` + "`" + `) become the table of contents. Their
   anchors are lower-cased with punctuation removed and spaces replaced by
   hyphens; repeated headings get ` + "`" + `-1` + "`" + `, ` + "`" + `-2` + "`" + ` suffixes.
6. When the directory is missing or holds no posts, the built-in posts are
   served instead.
`
