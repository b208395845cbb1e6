package transcript

import "strings"

// DefaultChunkBudget is the nominal per-chunk character budget for prompt
// embedding.
const DefaultChunkBudget = 12000

// Chunk splits sanitized text into an ordered, non-overlapping list of chunks,
// each at most budget characters. At every window boundary it prefers to cut
// at the last blank line past 40% of the window, then the last newline past
// 30%, and falls back to a hard cut at the budget so newline-free input still
// terminates. Empty chunks are dropped after trimming.
func Chunk(text string, budget int) []string {
	if budget <= 0 {
		budget = DefaultChunkBudget
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= budget {
		return []string{text}
	}

	var chunks []string
	for start := 0; start < len(text); {
		end := start + budget
		if end >= len(text) {
			end = len(text)
		} else {
			window := text[start:end]
			if i := strings.LastIndex(window, "\n\n"); i > budget*2/5 {
				end = start + i
			} else if i := strings.LastIndex(window, "\n"); i > budget*3/10 {
				end = start + i
			}
		}
		// guarantee forward progress even for degenerate cut points
		if end <= start {
			end = start + budget
			if end > len(text) {
				end = len(text)
			}
		}
		if c := strings.TrimSpace(text[start:end]); c != "" {
			chunks = append(chunks, c)
		}
		start = end
	}
	return chunks
}
