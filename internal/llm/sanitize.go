package llm

import "strings"

// StripCodeFences removes markdown code-fence wrappers from an oracle reply.
// Models regularly fence JSON as ```json ... ``` even when told not to; the
// payload inside must parse identically to an unfenced reply.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
