package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it. Existing values in base are offered as defaults.
func RunWizard(path string, base *Config) (*Config, error) {
	if base == nil {
		base = DefaultConfig()
	}
	cfg := *base

	fmt.Println("Welcome to postboard! Let's point it at your posts API.")
	fmt.Println()

	// 1. API base URL.
	urlPrompt := promptui.Prompt{
		Label:    "API base URL",
		Default:  cfg.BaseURL,
		Validate: ValidateBaseURL,
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = baseURL

	// 2. Web front-end port.
	portPrompt := promptui.Prompt{
		Label:    "Port for `postboard web`",
		Default:  strconv.Itoa(cfg.Web.Port),
		Validate: validatePortString,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("web port: %w", err)
	}
	cfg.Web.Port, _ = strconv.Atoi(portStr)

	// 3. Markdown rendering.
	mdPrompt := promptui.Select{
		Label: "Render post content as Markdown in the web front-end?",
		Items: []string{"no: show content as plain text", "yes: render Markdown (raw HTML stays escaped)"},
	}
	mdIdx, _, err := mdPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("markdown selection: %w", err)
	}
	cfg.Web.Markdown = mdIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return &cfg, nil
}

func validatePortString(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if !validPort(n) {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
