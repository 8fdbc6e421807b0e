// Package template implements chat-template documents: markdown files
// with a YAML frontmatter header and a body carrying substitution
// tokens.
//
// A template must declare `type: chat-template` in its header. The body
// supports two token forms:
//
//   - $ARGUMENTS expands to all arguments joined with single spaces
//   - $1, $2, ... expand to the corresponding positional argument
//
// Resolution is a pure function of the source text and arguments;
// nothing is cached or shared, so concurrent calls need no coordination.
package template
