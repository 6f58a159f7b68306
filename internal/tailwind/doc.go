// Package tailwind decodes utility class names into CSS declarations.
//
// The package has three layers. The Classifier discards tokens that have no
// meaning in a static email render (variant prefixes and utilities that
// email clients do not support). Resolvers are pure lookups from a class
// token to zero or more declarations, one per utility family. The
// Transformer runs the resolvers in a fixed priority order and folds the
// results of many tokens into one ordered declaration set where the last
// token wins per property.
//
// All lookup tables are built once at package initialization and are only
// read afterwards, so every exported function is safe for concurrent use.
package tailwind
