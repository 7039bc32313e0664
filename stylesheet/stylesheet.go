// Package stylesheet rewrites the declaration blocks of a stylesheet. Rules and at-rules pass through while every block of declarations is expanded into longhands and serialized again.
package stylesheet

import (
	"bytes"
	"io"
	"strings"

	"github.com/tdewolff/cssom"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	semicolonBytes    = []byte(";")
	commaBytes        = []byte(",")
	leftBracketBytes  = []byte("{")
	rightBracketBytes = []byte("}")
	newlineBytes      = []byte("\n")
	licenseBytes      = []byte("/*!")
)

// Options are the rewriter options.
type Options struct {
	Mode cssom.Mode

	// KeepComments keeps all top-level comments, otherwise only /*! comments are kept
	KeepComments bool

	// Inline reads a declaration list such as a style attribute instead of a stylesheet
	Inline bool
}

type block struct {
	ruleset bool
	decl    *cssom.Declaration
}

type rewriter struct {
	w      io.Writer
	p      *css.Parser
	o      Options
	errs   cssom.ErrorHandler
	minify bool

	blocks          []block
	semicolonQueued bool
	inSelector      bool
}

// Rewrite reads a stylesheet from r and writes it to w with every declaration block serialized in the mode of o. Invalid declarations and rules are reported to errs and dropped. If errs is nil, reports are discarded.
func Rewrite(w io.Writer, r io.Reader, o Options, errs cssom.ErrorHandler) error {
	if errs == nil {
		errs = &cssom.ErrorList{}
	}
	input := parse.NewInput(r)
	defer input.Restore()

	c := &rewriter{
		w:      w,
		p:      css.NewParser(input, o.Inline),
		o:      o,
		errs:   errs,
		minify: o.Mode == cssom.Minified || o.Mode == cssom.Optimized,
	}
	if err := c.rewriteGrammar(); err != nil && err != io.EOF {
		return err
	}

	// blocks left open by an early ending
	for i := len(c.blocks) - 1; 0 <= i; i-- {
		if err := c.flush(&c.blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

// String rewrites the stylesheet s.
func String(s string, o Options, errs cssom.ErrorHandler) (string, error) {
	b := &bytes.Buffer{}
	if err := Rewrite(b, strings.NewReader(s), o, errs); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *rewriter) write(b []byte) error {
	_, err := c.w.Write(b)
	return err
}

func (c *rewriter) writeString(s string) error {
	_, err := io.WriteString(c.w, s)
	return err
}

func (c *rewriter) writeValues(vals []css.Token) error {
	for _, val := range vals {
		if err := c.write(val.Data); err != nil {
			return err
		}
	}
	return nil
}

// indent returns the indentation of the current nesting level for verbose output.
func (c *rewriter) indent() string {
	n := 0
	for _, b := range c.blocks {
		if !b.ruleset {
			n++
		}
	}
	return strings.Repeat("\t", n)
}

// decl returns the declarations of the innermost block.
func (c *rewriter) decl() *cssom.Declaration {
	if len(c.blocks) == 0 {
		c.blocks = append(c.blocks, block{ruleset: true, decl: cssom.NewDeclaration(c.errs)})
	}
	return c.blocks[len(c.blocks)-1].decl
}

// flush writes and clears the pending declarations of b.
func (c *rewriter) flush(b *block) error {
	text := b.decl.Format(c.o.Mode)
	b.decl = cssom.NewDeclaration(c.errs)
	if text == "" {
		return nil
	}

	if c.minify {
		if c.semicolonQueued {
			if err := c.write(semicolonBytes); err != nil {
				return err
			}
		}
		c.semicolonQueued = true
		return c.writeString(text)
	} else if !b.ruleset {
		// declarations directly inside an at-rule, such as @font-face
		text = c.indent() + strings.TrimSpace(text) + "\n"
	}
	return c.writeString(text)
}

func (c *rewriter) flushTop() error {
	if len(c.blocks) == 0 {
		return nil
	}
	return c.flush(&c.blocks[len(c.blocks)-1])
}

func (c *rewriter) openBlock(ruleset bool) {
	c.blocks = append(c.blocks, block{ruleset: ruleset, decl: cssom.NewDeclaration(c.errs)})
}

func (c *rewriter) closeBlock() error {
	if err := c.flushTop(); err != nil {
		return err
	}
	ruleset := true
	if 0 < len(c.blocks) {
		ruleset = c.blocks[len(c.blocks)-1].ruleset
		c.blocks = c.blocks[:len(c.blocks)-1]
	}
	c.semicolonQueued = false

	if c.minify {
		return c.write(rightBracketBytes)
	} else if ruleset {
		return c.writeString("}\n")
	}
	return c.writeString(c.indent() + "}\n")
}

func (c *rewriter) rewriteGrammar() error {
	for {
		gt, _, data := c.p.Next()
		switch gt {
		case css.ErrorGrammar:
			if _, ok := c.p.Err().(*parse.Error); ok {
				c.errs.Report(cssom.SyntaxError, "", c.p.Err().Error())
				continue
			}
			return c.p.Err()
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if err := c.closeBlock(); err != nil {
				return err
			}
			continue
		case css.DeclarationGrammar:
			c.decl().SetPropertyTokens(string(data), c.p.Values())
			continue
		case css.CustomPropertyGrammar:
			c.decl().SetProperty(string(data), string(c.p.Values()[0].Data), "")
			continue
		}

		// anything else ends the declarations seen so far
		if err := c.flushTop(); err != nil {
			return err
		}
		if c.semicolonQueued {
			if err := c.write(semicolonBytes); err != nil {
				return err
			}
			c.semicolonQueued = false
		}

		switch gt {
		case css.AtRuleGrammar:
			if !c.minify {
				if err := c.writeString(c.indent()); err != nil {
					return err
				}
			}
			if err := c.write(data); err != nil {
				return err
			} else if err := c.writeValues(c.p.Values()); err != nil {
				return err
			}
			if c.minify {
				c.semicolonQueued = true
			} else if err := c.writeString(";\n"); err != nil {
				return err
			}
		case css.BeginAtRuleGrammar:
			if !c.minify {
				if err := c.writeString(c.indent()); err != nil {
					return err
				}
			}
			if err := c.write(data); err != nil {
				return err
			} else if err := c.writeValues(c.p.Values()); err != nil {
				return err
			}
			if c.minify {
				if err := c.write(leftBracketBytes); err != nil {
					return err
				}
			} else if err := c.writeString(" {\n"); err != nil {
				return err
			}
			c.openBlock(false)
		case css.QualifiedRuleGrammar:
			if err := c.writeSelector(); err != nil {
				return err
			}
			if err := c.write(commaBytes); err != nil {
				return err
			} else if !c.minify {
				if err := c.writeString(" "); err != nil {
					return err
				}
			}
		case css.BeginRulesetGrammar:
			if err := c.writeSelector(); err != nil {
				return err
			}
			c.inSelector = false
			if c.minify {
				if err := c.write(leftBracketBytes); err != nil {
					return err
				}
			} else if err := c.writeString(" { "); err != nil {
				return err
			}
			c.openBlock(true)
		case css.CommentGrammar:
			if c.o.KeepComments || bytes.HasPrefix(data, licenseBytes) {
				if !c.minify {
					if err := c.writeString(c.indent()); err != nil {
						return err
					}
				}
				if err := c.write(data); err != nil {
					return err
				}
				if !c.minify {
					if err := c.write(newlineBytes); err != nil {
						return err
					}
				}
			}
		default:
			if err := c.write(data); err != nil {
				return err
			}
		}
	}
}

func (c *rewriter) writeSelector() error {
	if !c.inSelector && !c.minify {
		if err := c.writeString(c.indent()); err != nil {
			return err
		}
	}
	c.inSelector = true
	return c.writeValues(c.p.Values())
}
