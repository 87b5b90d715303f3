// Package markup is a small HTML writer for hand-written templ components.
//
//	func Greeting(name string) templ.Component {
//		return markup.Component(func(_ context.Context, w *markup.Writer) {
//			w.Raw("<p>Hello ")
//			w.Text(name)
//			w.Raw("</p>")
//		})
//	}
//
// Static markup goes through Raw, every dynamic value through Text, Attr or
// URLAttr, which escape with templ.EscapeString.
package markup
