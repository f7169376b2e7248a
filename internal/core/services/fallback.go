package services

import (
	"fmt"
	"strings"
)

// FallbackGenerator produces generic outline text when the vector index
// is unavailable. Output is deterministic for a given query: the query
// is classified into a keyword bucket by case-insensitive substring
// matching, and the bucket's canned outline is returned. This keeps the
// article prompt coherent when retrieval has degraded.
type FallbackGenerator struct {
	buckets []fallbackBucket
	generic string
}

// fallbackBucket pairs a match predicate with its outline template.
type fallbackBucket struct {
	match    func(query string) bool
	template string
}

// containsAny reports whether the lowercased query contains any term.
func containsAny(query string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(query, term) {
			return true
		}
	}
	return false
}

// containsWord matches whole words only, for terms too short for
// substring matching.
func containsWord(query string, words ...string) bool {
	fields := strings.FieldsFunc(query, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	for _, field := range fields {
		for _, word := range words {
			if field == word {
				return true
			}
		}
	}
	return false
}

const financeOutline = `## Understanding the Financial Landscape

Financial topics reward careful, well-sourced writing. Cover the fundamentals first: what the product or concept is, who it is for, and what it costs.

## Key Considerations

- How credit, rates, and fees interact
- Common mistakes and how to avoid them
- Regulatory protections readers should know about

## Practical Guidance

Offer concrete steps a reader can take this week, ordered from lowest to highest effort.

## Long-Term Strategy

Close with how the topic fits into broader financial health and planning.`

const technologyOutline = `## The Technology in Context

Introduce the technology, the problem it solves, and how it compares to what came before.

## How It Works

Explain the core mechanism at a level a motivated non-specialist can follow.

## Adoption and Use Cases

- Who is using it today and for what
- Tooling and ecosystem maturity
- Costs and trade-offs of adopting now versus waiting

## Looking Ahead

Discuss the current trajectory and what readers should watch for next.`

const healthOutline = `## What the Evidence Says

Summarize the current understanding of the topic, favoring consensus sources over individual studies.

## Practical Implications

- Day-to-day habits that matter most
- Signs that professional advice is needed
- Common myths and what the research actually supports

## A Balanced Perspective

Close with realistic expectations and encourage readers to consult qualified professionals for personal decisions.`

const genericOutlineFormat = `## Introduction to %[1]s

Set the stage: why %[1]s matters right now and who should care.

## Key Aspects of %[1]s

- Core concepts and definitions
- Current trends and notable developments
- Practical applications and examples

## Challenges and Considerations

Discuss the common difficulties, open questions, and trade-offs around %[1]s.

## Conclusion

Summarize the main points and leave the reader with a clear takeaway about %[1]s.`

// NewFallbackGenerator creates the generator with its built-in buckets.
func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{
		buckets: []fallbackBucket{
			{
				match: func(q string) bool {
					return containsAny(q, "finance", "credit", "loan", "mortgage", "invest", "bank", "money", "budget")
				},
				template: financeOutline,
			},
			{
				match: func(q string) bool {
					return containsAny(q, "tech", "software", "program", "computer", "machine learning", "data", "cloud", "crypto") ||
						containsWord(q, "ai")
				},
				template: technologyOutline,
			},
			{
				match: func(q string) bool {
					return containsAny(q, "health", "fitness", "diet", "medic", "wellness", "exercise", "nutrition")
				},
				template: healthOutline,
			},
		},
		generic: genericOutlineFormat,
	}
}

// Generate returns outline text for the query. Pure and deterministic:
// the same query always yields the same text.
func (g *FallbackGenerator) Generate(query string) string {
	lowered := strings.ToLower(query)
	for _, bucket := range g.buckets {
		if bucket.match(lowered) {
			return bucket.template
		}
	}
	return fmt.Sprintf(g.generic, strings.TrimSpace(query))
}
