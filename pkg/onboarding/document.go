package onboarding

import "strings"

// Section names the part of the email a block belongs to.
type Section string

const (
	SectionGreeting     Section = "greeting"
	SectionIntro        Section = "intro"
	SectionRequirements Section = "requirements"
	SectionGuides       Section = "guides"
	SectionCRMLinks     Section = "crm_links"
	SectionAccess       Section = "access"
	SectionSignOff      Section = "signoff"
)

// Kind is the block type.
type Kind string

const (
	KindParagraph   Kind = "paragraph"
	KindBreak       Kind = "break"
	KindLabel       Kind = "label"
	KindList        Kind = "list"
	KindImage       Kind = "image"
	KindPlaceholder Kind = "placeholder"
)

// Span is a run of inline text. A span with Href is a hyperlink.
type Span struct {
	Text string `json:"text" yaml:"text"`
	Bold bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Href string `json:"href,omitempty" yaml:"href,omitempty"`
}

// Image references a static guide asset by file name.
// Caption is empty unless several guides are shown together.
type Image struct {
	Asset   string `json:"asset" yaml:"asset"`
	Alt     string `json:"alt" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Block is one block-level element of the email body.
//
//   - KindParagraph and KindPlaceholder use Spans.
//   - KindLabel uses Spans with a single bold span.
//   - KindList uses Items, one span per list item.
//   - KindImage uses Image.
//   - KindBreak carries no content.
type Block struct {
	Section Section `json:"section" yaml:"section"`
	Kind    Kind    `json:"kind" yaml:"kind"`
	Spans   []Span  `json:"spans,omitempty" yaml:"spans,omitempty"`
	Items   []Span  `json:"items,omitempty" yaml:"items,omitempty"`
	Image   *Image  `json:"image,omitempty" yaml:"image,omitempty"`
}

// Document is the assembled email body.
type Document struct {
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Has reports whether any block belongs to section.
func (d Document) Has(section Section) bool {
	for _, b := range d.Blocks {
		if b.Section == section {
			return true
		}
	}
	return false
}

// Section returns the blocks of section in document order.
func (d Document) Section(section Section) []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.Section == section {
			out = append(out, b)
		}
	}
	return out
}

// Sections returns the distinct sections in the order they first appear.
func (d Document) Sections() []Section {
	var out []Section
	for i, b := range d.Blocks {
		if i == 0 || d.Blocks[i-1].Section != b.Section {
			out = append(out, b.Section)
		}
	}
	return out
}

// PlainText concatenates the span texts of b.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

type builder struct {
	section Section
	blocks  []Block
}

func (b *builder) in(section Section) *builder {
	b.section = section
	return b
}

func (b *builder) paragraph(spans ...Span) {
	b.blocks = append(b.blocks, Block{Section: b.section, Kind: KindParagraph, Spans: spans})
}

func (b *builder) text(s string) {
	b.paragraph(Span{Text: s})
}

func (b *builder) lineBreak() {
	b.blocks = append(b.blocks, Block{Section: b.section, Kind: KindBreak})
}

func (b *builder) label(s string) {
	b.blocks = append(b.blocks, Block{Section: b.section, Kind: KindLabel, Spans: []Span{{Text: s, Bold: true}}})
}

func (b *builder) list(items ...Span) {
	b.blocks = append(b.blocks, Block{Section: b.section, Kind: KindList, Items: items})
}

func (b *builder) image(img Image) {
	b.blocks = append(b.blocks, Block{Section: b.section, Kind: KindImage, Image: &img})
}

func (b *builder) placeholder(s string) {
	b.blocks = append(b.blocks, Block{Section: b.section, Kind: KindPlaceholder, Spans: []Span{{Text: s}}})
}

func plain(s string) Span { return Span{Text: s} }
func bold(s string) Span  { return Span{Text: s, Bold: true} }
