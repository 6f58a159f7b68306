// Package mailwind converts Tailwind utility classes in HTML email markup
// into inline style attributes that mail clients can render.
//
// # Conversion
//
// Convert a template once with the default options:
//
//	out, err := mailwind.Convert(`<td class="p-4 bg-white text-gray-900">Hi</td>`, mailwind.DefaultOptions())
//	// <td style="padding: 16px; background-color: #ffffff; color: #111827">Hi</td>
//
// Or build a Converter and reuse it; it is safe for concurrent use:
//
//	c := mailwind.New(mailwind.DefaultOptions(), mailwind.WithLogger(logger))
//	out, err := c.Convert(html)
//
// Responsive and state variants (md:, hover:, dark:) and utilities that
// mail clients cannot render (flex, grid, transforms) are dropped.
// Utilities that do resolve are merged into any existing style attribute,
// the class value winning for a property set twice.
//
// # Batch conversion and linting
//
// ConvertFiles converts every file matched by a set of glob patterns. Lint
// reports the classes in templates that will not survive conversion, in
// golangci-lint format.
//
// # CLI Tool
//
// Install the command with:
//
//	go install github.com/yacobolo/mailwind/cmd/mailwind@latest
package mailwind
