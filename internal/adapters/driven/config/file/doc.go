// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under the fincrew config directory.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable task and summary prompts
package file
