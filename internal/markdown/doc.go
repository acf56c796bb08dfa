// Package markdown discovers content files on an fs.FS, splits their front
// matter from the body, and renders bodies to HTML. The default renderer is a
// fixed, order-dependent rewrite pipeline whose output shape downstream pages
// rely on; a goldmark engine is available for hosts that want CommonMark.
package markdown
