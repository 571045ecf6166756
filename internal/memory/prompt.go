package memory

func buildSummaryPrompt(note string) string {
	return `
You are an assistant for restaurant staff.

Your task:
- Summarize the guest note below into ONE short sentence.
- Keep allergies, preferences and special occasions.
- Output plain text only.
- NO markdown.
- NO extra commentary.

GUEST NOTE:
` + note
}
