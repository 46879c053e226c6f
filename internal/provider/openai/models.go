package openai

const (
	// ModelGPT41 is the GPT-4.1 model identifier.
	ModelGPT41 = "gpt-4-1"

	// ModelGPT41Mini is the GPT-4.1 mini model identifier.
	ModelGPT41Mini = "gpt-4-1-mini"

	// ModelO3 is the o3 reasoning model identifier.
	ModelO3 = "gpt-o3"
)

// SupportedModels returns the list of models with compiled-in pricing.
func SupportedModels() []string {
	return []string{
		ModelGPT41,
		ModelGPT41Mini,
		ModelO3,
	}
}
