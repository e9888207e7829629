// This file provides the ALL-CAPS element constructors for the choc package.
package choc

import (
	"sort"

	"github.com/Rosuav/Choc/pkg/dom"
)

// Document structure elements

func HTML(args ...any) *Node {
	return dom.Html(args...)
}
func HEAD(args ...any) *Node {
	return dom.Head(args...)
}
func BODY(args ...any) *Node {
	return dom.Body(args...)
}
func TITLE(args ...any) *Node {
	return dom.Title(args...)
}
func META(args ...any) *Node {
	return dom.Meta(args...)
}
func LINK(args ...any) *Node {
	return dom.Link(args...)
}
func BASE(args ...any) *Node {
	return dom.Base(args...)
}

// Content sectioning elements

func HEADER(args ...any) *Node {
	return dom.Header(args...)
}
func FOOTER(args ...any) *Node {
	return dom.Footer(args...)
}
func MAIN(args ...any) *Node {
	return dom.Main(args...)
}
func NAV(args ...any) *Node {
	return dom.Nav(args...)
}
func SECTION(args ...any) *Node {
	return dom.Section(args...)
}
func ARTICLE(args ...any) *Node {
	return dom.Article(args...)
}
func ASIDE(args ...any) *Node {
	return dom.Aside(args...)
}
func ADDRESS(args ...any) *Node {
	return dom.Address(args...)
}
func H1(args ...any) *Node {
	return dom.H1(args...)
}
func H2(args ...any) *Node {
	return dom.H2(args...)
}
func H3(args ...any) *Node {
	return dom.H3(args...)
}
func H4(args ...any) *Node {
	return dom.H4(args...)
}
func H5(args ...any) *Node {
	return dom.H5(args...)
}
func H6(args ...any) *Node {
	return dom.H6(args...)
}
func HGROUP(args ...any) *Node {
	return dom.Hgroup(args...)
}

// Text content elements

func DIV(args ...any) *Node {
	return dom.Div(args...)
}
func P(args ...any) *Node {
	return dom.P(args...)
}
func SPAN(args ...any) *Node {
	return dom.Span(args...)
}
func PRE(args ...any) *Node {
	return dom.Pre(args...)
}
func BLOCKQUOTE(args ...any) *Node {
	return dom.Blockquote(args...)
}
func UL(args ...any) *Node {
	return dom.Ul(args...)
}
func OL(args ...any) *Node {
	return dom.Ol(args...)
}
func LI(args ...any) *Node {
	return dom.Li(args...)
}
func DL(args ...any) *Node {
	return dom.Dl(args...)
}
func DT(args ...any) *Node {
	return dom.Dt(args...)
}
func DD(args ...any) *Node {
	return dom.Dd(args...)
}
func HR(args ...any) *Node {
	return dom.Hr(args...)
}
func FIGURE(args ...any) *Node {
	return dom.Figure(args...)
}
func FIGCAPTION(args ...any) *Node {
	return dom.Figcaption(args...)
}

// Inline text semantics

func A(args ...any) *Node {
	return dom.A(args...)
}
func STRONG(args ...any) *Node {
	return dom.Strong(args...)
}
func EM(args ...any) *Node {
	return dom.Em(args...)
}
func B(args ...any) *Node {
	return dom.B(args...)
}
func I(args ...any) *Node {
	return dom.I(args...)
}
func U(args ...any) *Node {
	return dom.U(args...)
}
func S(args ...any) *Node {
	return dom.S(args...)
}
func SMALL(args ...any) *Node {
	return dom.Small(args...)
}
func MARK(args ...any) *Node {
	return dom.Mark(args...)
}
func SUB(args ...any) *Node {
	return dom.Sub(args...)
}
func SUP(args ...any) *Node {
	return dom.Sup(args...)
}
func CODE(args ...any) *Node {
	return dom.Code(args...)
}
func KBD(args ...any) *Node {
	return dom.Kbd(args...)
}
func SAMP(args ...any) *Node {
	return dom.Samp(args...)
}
func VAR(args ...any) *Node {
	return dom.Var(args...)
}
func ABBR(args ...any) *Node {
	return dom.Abbr(args...)
}
func TIME(args ...any) *Node {
	return dom.Time_(args...)
}
func CITE(args ...any) *Node {
	return dom.Cite(args...)
}
func Q(args ...any) *Node {
	return dom.Q(args...)
}
func DFN(args ...any) *Node {
	return dom.Dfn(args...)
}
func RUBY(args ...any) *Node {
	return dom.Ruby(args...)
}
func RT(args ...any) *Node {
	return dom.Rt(args...)
}
func RP(args ...any) *Node {
	return dom.Rp(args...)
}
func BDI(args ...any) *Node {
	return dom.Bdi(args...)
}
func BDO(args ...any) *Node {
	return dom.Bdo(args...)
}
func DATA(args ...any) *Node {
	return dom.DataElement(args...)
}
func BR(args ...any) *Node {
	return dom.Br(args...)
}
func WBR(args ...any) *Node {
	return dom.Wbr(args...)
}

// Form elements

func FORM(args ...any) *Node {
	return dom.Form(args...)
}
func INPUT(args ...any) *Node {
	return dom.Input(args...)
}
func TEXTAREA(args ...any) *Node {
	return dom.Textarea(args...)
}
func SELECT(args ...any) *Node {
	return dom.Select(args...)
}
func OPTION(args ...any) *Node {
	return dom.Option(args...)
}
func OPTGROUP(args ...any) *Node {
	return dom.Optgroup(args...)
}
func BUTTON(args ...any) *Node {
	return dom.Button(args...)
}
func LABEL(args ...any) *Node {
	return dom.Label(args...)
}
func FIELDSET(args ...any) *Node {
	return dom.Fieldset(args...)
}
func LEGEND(args ...any) *Node {
	return dom.Legend(args...)
}
func DATALIST(args ...any) *Node {
	return dom.Datalist(args...)
}
func OUTPUT(args ...any) *Node {
	return dom.Output(args...)
}
func PROGRESS(args ...any) *Node {
	return dom.Progress(args...)
}
func METER(args ...any) *Node {
	return dom.Meter(args...)
}

// Table elements

func TABLE(args ...any) *Node {
	return dom.Table(args...)
}
func THEAD(args ...any) *Node {
	return dom.Thead(args...)
}
func TBODY(args ...any) *Node {
	return dom.Tbody(args...)
}
func TFOOT(args ...any) *Node {
	return dom.Tfoot(args...)
}
func TR(args ...any) *Node {
	return dom.Tr(args...)
}
func TH(args ...any) *Node {
	return dom.Th(args...)
}
func TD(args ...any) *Node {
	return dom.Td(args...)
}
func CAPTION(args ...any) *Node {
	return dom.Caption(args...)
}
func COLGROUP(args ...any) *Node {
	return dom.Colgroup(args...)
}
func COL(args ...any) *Node {
	return dom.Col(args...)
}

// Media elements

func IMG(args ...any) *Node {
	return dom.Img(args...)
}
func PICTURE(args ...any) *Node {
	return dom.Picture(args...)
}
func SOURCE(args ...any) *Node {
	return dom.Source(args...)
}
func VIDEO(args ...any) *Node {
	return dom.Video(args...)
}
func AUDIO(args ...any) *Node {
	return dom.Audio(args...)
}
func TRACK(args ...any) *Node {
	return dom.Track(args...)
}
func IFRAME(args ...any) *Node {
	return dom.Iframe(args...)
}
func EMBED(args ...any) *Node {
	return dom.Embed(args...)
}
func OBJECT(args ...any) *Node {
	return dom.Object(args...)
}
func PARAM(args ...any) *Node {
	return dom.Param(args...)
}
func CANVAS(args ...any) *Node {
	return dom.Canvas(args...)
}

var svgElement = dom.NSTag("svg", "svg")

// SVG builds an svg element in the SVG namespace. Child elements use
// NSTag aliases ("svg:path" and friends).
func SVG(args ...any) *Node {
	return svgElement(args...)
}

func MATH(args ...any) *Node {
	return dom.Math(args...)
}
func MAP(args ...any) *Node {
	return dom.Map_(args...)
}
func AREA(args ...any) *Node {
	return dom.Area(args...)
}

// Interactive elements

func DETAILS(args ...any) *Node {
	return dom.Details(args...)
}
func SUMMARY(args ...any) *Node {
	return dom.Summary(args...)
}
func DIALOG(args ...any) *Node {
	return dom.Dialog(args...)
}
func MENU(args ...any) *Node {
	return dom.Menu(args...)
}

// Scripting elements

func SCRIPT(args ...any) *Node {
	return dom.Script(args...)
}
func NOSCRIPT(args ...any) *Node {
	return dom.Noscript(args...)
}
func TEMPLATE(args ...any) *Node {
	return dom.Template(args...)
}
func SLOT(args ...any) *Node {
	return dom.Slot(args...)
}
func STYLE(args ...any) *Node {
	return dom.Style(args...)
}

// elementTags maps every constructor name above to the tag it builds.
// The chocimport analyzer consults this table to decide which ALL-CAPS
// identifiers are element constructors.
var elementTags = map[string]string{
	"HTML": "html", "HEAD": "head", "BODY": "body", "TITLE": "title",
	"META": "meta", "LINK": "link", "BASE": "base",

	"HEADER": "header", "FOOTER": "footer", "MAIN": "main", "NAV": "nav",
	"SECTION": "section", "ARTICLE": "article", "ASIDE": "aside",
	"ADDRESS": "address", "H1": "h1", "H2": "h2", "H3": "h3", "H4": "h4",
	"H5": "h5", "H6": "h6", "HGROUP": "hgroup",

	"DIV": "div", "P": "p", "SPAN": "span", "PRE": "pre",
	"BLOCKQUOTE": "blockquote", "UL": "ul", "OL": "ol", "LI": "li",
	"DL": "dl", "DT": "dt", "DD": "dd", "HR": "hr", "FIGURE": "figure",
	"FIGCAPTION": "figcaption",

	"A": "a", "STRONG": "strong", "EM": "em", "B": "b", "I": "i",
	"U": "u", "S": "s", "SMALL": "small", "MARK": "mark", "SUB": "sub",
	"SUP": "sup", "CODE": "code", "KBD": "kbd", "SAMP": "samp",
	"VAR": "var", "ABBR": "abbr", "TIME": "time", "CITE": "cite",
	"Q": "q", "DFN": "dfn", "RUBY": "ruby", "RT": "rt", "RP": "rp",
	"BDI": "bdi", "BDO": "bdo", "DATA": "data", "BR": "br", "WBR": "wbr",

	"FORM": "form", "INPUT": "input", "TEXTAREA": "textarea",
	"SELECT": "select", "OPTION": "option", "OPTGROUP": "optgroup",
	"BUTTON": "button", "LABEL": "label", "FIELDSET": "fieldset",
	"LEGEND": "legend", "DATALIST": "datalist", "OUTPUT": "output",
	"PROGRESS": "progress", "METER": "meter",

	"TABLE": "table", "THEAD": "thead", "TBODY": "tbody",
	"TFOOT": "tfoot", "TR": "tr", "TH": "th", "TD": "td",
	"CAPTION": "caption", "COLGROUP": "colgroup", "COL": "col",

	"IMG": "img", "PICTURE": "picture", "SOURCE": "source",
	"VIDEO": "video", "AUDIO": "audio", "TRACK": "track",
	"IFRAME": "iframe", "EMBED": "embed", "OBJECT": "object",
	"PARAM": "param", "CANVAS": "canvas", "SVG": "svg", "MATH": "math",
	"MAP": "map", "AREA": "area",

	"DETAILS": "details", "SUMMARY": "summary", "DIALOG": "dialog",
	"MENU": "menu",

	"SCRIPT": "script", "NOSCRIPT": "noscript", "TEMPLATE": "template",
	"SLOT": "slot", "STYLE": "style",
}

// KnownElement reports whether name is one of the package's element
// constructors.
func KnownElement(name string) bool {
	_, ok := elementTags[name]
	return ok
}

// ElementTag returns the tag built by the named constructor.
func ElementTag(name string) (string, bool) {
	tag, ok := elementTags[name]
	return tag, ok
}

// ElementNames returns all constructor names in sorted order.
func ElementNames() []string {
	names := make([]string, 0, len(elementTags))
	for name := range elementTags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
