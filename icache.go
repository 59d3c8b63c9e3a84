package osd

// InvalidateInstructionCache tells the CPU that the instructions in code
// changed. Call it after writing code and before running it for the first
// time; skipping it can execute stale instructions.
func InvalidateInstructionCache(code []byte) {
	if len(code) == 0 {
		return
	}
	cacheflush(code)
}
