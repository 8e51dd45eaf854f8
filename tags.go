package htmlkit

// voidTags never have children and are never followed by a matching end
// tag, whether or not the source self-closes them with "/>".
var voidTags = map[string]bool{
	"br": true, "img": true, "hr": true, "meta": true, "input": true,
	"embed": true, "area": true, "base": true, "col": true, "keygen": true,
	"link": true, "param": true, "source": true, "command": true,
	"track": true, "wbr": true,
}

// rawTextTags are parsed in raw-text mode: nested tags are not markup,
// only comments are recognized inside them.
var rawTextTags = map[string]bool{
	"script": true, "style": true,
}

// optionalEndTags may omit their end tag; closure is implied by a sibling
// or invalid-nesting child, or by the parent's own end. This set exists
// for documentation only; isInvalidNest is what the parser actually
// consults.
var optionalEndTags = map[string]bool{
	"li": true, "dt": true, "dd": true, "p": true, "rt": true, "rp": true,
	"optgroup": true, "option": true, "colgroup": true, "caption": true,
	"thead": true, "tbody": true, "tfoot": true, "tr": true, "td": true,
	"th": true,
}

func isVoid(tag string) bool {
	return voidTags[tag]
}

func isRawText(tag string) bool {
	return rawTextTags[tag]
}

// pClosers is the set of elements whose appearance forces an open <p> to
// close (HTML5 "optional tags" table).
var pClosers = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"details": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hgroup": true, "hr": true, "main": true, "menu": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "ul": true,
}

var theadTfootClosers = map[string]bool{"tbody": true, "tfoot": true}
var tbodyClosers = map[string]bool{"tbody": true, "tfoot": true, "table": true}
var trClosers = map[string]bool{"tr": true, "thead": true, "tbody": true, "tfoot": true}
var tdThClosers = map[string]bool{"td": true, "th": true, "tr": true, "tbody": true, "tfoot": true}

// isInvalidNest reports whether child appearing inside an open parent
// forces that parent to close implicitly. parent and child are both
// lowercased tag names; parent == "" (top level) is never invalid.
func isInvalidNest(parent, child string) bool {
	switch parent {
	case "":
		return false
	case "head":
		return child == "body"
	case "li":
		return child == "li"
	case "dt", "dd":
		return child == "dt" || child == "dd"
	case "p":
		return pClosers[child]
	case "rt", "rp":
		return child == "rt" || child == "rp"
	case "optgroup":
		return child == "optgroup"
	case "option":
		return child == "option" || child == "optgroup"
	case "colgroup":
		return child != "col"
	case "caption":
		return true
	case "thead":
		return theadTfootClosers[child]
	case "tbody":
		return tbodyClosers[child]
	case "tfoot":
		return child == "table"
	case "tr":
		return trClosers[child]
	case "td", "th":
		return tdThClosers[child]
	default:
		return false
	}
}
