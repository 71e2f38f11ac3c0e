package constants

// AppName names the binary and its configuration directory.
const AppName = "pydocstring"

// Delimiter wraps docstrings printed by the CLI.
const Delimiter = `"""`

// SyntaxTheme is the default Chroma theme for colored CLI output.
//
// Dark themes (recommended for terminals):
//   - monokai, dracula, nord, gruvbox, onedark
//   - github-dark       - GitHub's dark theme (default)
//   - solarized-dark, catppuccin-mocha, tokyonight-night, rose-pine
//
// Light themes:
//   - github, solarized-light, gruvbox-light, catppuccin-latte, xcode
//
// Any Chroma style name is accepted; unknown names fall back to Chroma's
// default style.
const SyntaxTheme = "github-dark"
