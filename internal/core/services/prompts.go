package services

import (
	"fmt"
	"strings"
)

// Prompt templates used by the article pipeline.

// refineQueryPrompt turns a blog topic into a retrieval query.
const refineQueryPrompt = `Given the blog topic '%s',
generate a comprehensive similarity search query that would help find relevant content for writing a blog post.
Focus on finding authoritative sources, expert opinions, and practical examples that would be valuable for blog readers.
Consider aspects like best practices, case studies, and current trends in the field.
Return only the refined query, no explanations.`

// selectKeywordPrompt picks the most relevant trending keyword for a topic.
const selectKeywordPrompt = `From these trending topics: %s,
select the most relevant and engaging one for a blog on "%s".
Return only the topic name, no explanations.`

// articleSystemPrompt frames the completion call. The retrieved context
// is inlined so the model grounds the article in crawled material.
const articleSystemPrompt = `You are an expert blog writer specializing in %s.
Use the following reference information to create a comprehensive blog post:

%s

Write in a conversational yet authoritative tone. Structure with:
- Engaging introduction (1-2 paragraphs)
- 4-6 substantial key points with detailed explanations (2-3 paragraphs each)
- Examples, case studies, or data points to support your arguments
- Actionable insights or takeaways for the reader
- Strong conclusion summarizing the main points (1-2 paragraphs)

Ensure the blog is at least 1,000 words. Use markdown headings to organize content.
Balance depth with readability, using industry terminology appropriately.`

// articleUserPrompt is the human turn of the completion call.
const articleUserPrompt = `Write a comprehensive blog post about %s.`

// RefineQueryPrompt formats the retrieval-query refinement prompt.
func RefineQueryPrompt(topic string) string {
	return fmt.Sprintf(refineQueryPrompt, topic)
}

// SelectKeywordPrompt formats the keyword selection prompt.
func SelectKeywordPrompt(topic string, keywords []string) string {
	return fmt.Sprintf(selectKeywordPrompt, strings.Join(keywords, ", "), topic)
}

// ArticleSystemPrompt formats the system message for article generation.
func ArticleSystemPrompt(keyword, context string) string {
	return fmt.Sprintf(articleSystemPrompt, keyword, context)
}

// ArticleUserPrompt formats the user message for article generation.
func ArticleUserPrompt(topic string) string {
	return fmt.Sprintf(articleUserPrompt, topic)
}
