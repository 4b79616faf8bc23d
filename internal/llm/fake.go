package llm

import "context"

// Fake is a scripted client for tests. Responses are returned in order; once
// exhausted, the last one repeats.
type Fake struct {
	Responses []string
	Err       error

	// Prompts records every (system, prompt) pair received.
	Prompts [][2]string

	calls int
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Complete(_ context.Context, system, prompt string) (string, error) {
	f.Prompts = append(f.Prompts, [2]string{system, prompt})
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Responses) == 0 {
		return "", nil
	}
	i := f.calls
	if i >= len(f.Responses) {
		i = len(f.Responses) - 1
	}
	f.calls++
	return f.Responses[i], nil
}
