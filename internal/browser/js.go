package browser

import (
	"encoding/json"
	"fmt"
)

// jsString renders s as a JS string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// checkedExpr evaluates to the checked state of the first match, false when absent.
func checkedExpr(selector string) string {
	return fmt.Sprintf(`(() => { const el = document.querySelector(%s); return !!(el && el.checked); })()`, jsString(selector))
}

// clearInputExpr empties the input through its native value setter and fires
// an input event, so frameworks tracking the field observe the change.
func clearInputExpr(selector string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	if (!el) return false;
	const setter = Object.getOwnPropertyDescriptor(Object.getPrototypeOf(el), "value").set;
	setter.call(el, "");
	el.dispatchEvent(new Event("input", { bubbles: true }));
	return true;
})()`, jsString(selector))
}

// textExpr evaluates to the text content of the first match, "" when absent.
func textExpr(selector string) string {
	return fmt.Sprintf(`(() => { const el = document.querySelector(%s); return el ? el.textContent : ""; })()`, jsString(selector))
}

// textEqualsExpr evaluates to true when the trimmed text content equals text.
func textEqualsExpr(selector string, text string) string {
	return fmt.Sprintf(`(() => { const el = document.querySelector(%s); return !!el && el.textContent.trim() === %s; })()`, jsString(selector), jsString(text))
}

// textContainsExpr evaluates to true when the text content contains text.
func textContainsExpr(selector string, text string) string {
	return fmt.Sprintf(`(() => { const el = document.querySelector(%s); return !!el && el.textContent.includes(%s); })()`, jsString(selector), jsString(text))
}

// notPresentExpr evaluates to true when nothing matches selector.
func notPresentExpr(selector string) string {
	return fmt.Sprintf(`document.querySelector(%s) === null`, jsString(selector))
}

// attrContainsExpr evaluates to true when attribute attr of the first match
// contains value as a substring.
func attrContainsExpr(selector string, attr string, value string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%s);
	if (!el) return false;
	const attr = el.getAttribute(%s);
	return attr !== null && attr.includes(%s);
})()`, jsString(selector), jsString(attr), jsString(value))
}

// valueEqualsExpr evaluates to true when the input's value equals value.
func valueEqualsExpr(selector string, value string) string {
	return fmt.Sprintf(`(() => { const el = document.querySelector(%s); return !!el && el.value === %s; })()`, jsString(selector), jsString(value))
}
