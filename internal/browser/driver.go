// Package browser drives the installer's WebUI through a Chrome instance.
//
// Driver exposes the small set of click/wait/assert primitives the test
// helpers compose. Wait primitives block until the condition holds or the
// configured timeout elapses; nothing is retried beyond that window.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/chromedp/chromedp"

	"github.com/osci-tools/anaconda-webui-harness/internal/config"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// pollInterval is the delay between condition re-evaluations while waiting.
const pollInterval = 100 * time.Millisecond

// Driver is a live browser session pointed at the WebUI.
type Driver struct {
	ctx     context.Context
	cancels []context.CancelFunc
	timeout time.Duration
}

// Start launches a browser, navigates to the WebUI, and returns the driver.
func Start(ctx context.Context, cfg config.Browser, timeout time.Duration) (*Driver, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New(messages.BrowserURLRequired)
	}

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts, chromedp.Flag("headless", cfg.Headless))
	if cfg.Binary != "" {
		opts = append(opts, chromedp.ExecPath(cfg.Binary))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	d := &Driver{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{cancelBrowser, cancelAlloc},
		timeout: timeout,
	}
	if err := chromedp.Run(browserCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf(messages.BrowserStartFmt, err)
	}
	if err := d.Navigate(cfg.URL); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// Close tears down the browser session.
func (d *Driver) Close() {
	for _, cancel := range d.cancels {
		cancel()
	}
}

// Navigate loads url in the browser tab.
func (d *Driver) Navigate(url string) error {
	if err := d.run(chromedp.Navigate(url)); err != nil {
		return fmt.Errorf(messages.BrowserNavigateFmt, url, err)
	}
	return nil
}

// Click clicks the element matching selector.
func (d *Driver) Click(selector string) error {
	if err := d.run(chromedp.Click(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf(messages.BrowserClickFmt, selector, err)
	}
	return nil
}

// Checked reports the checked state of the element matching selector.
func (d *Driver) Checked(selector string) (bool, error) {
	var checked bool
	if err := d.run(chromedp.Evaluate(checkedExpr(selector), &checked)); err != nil {
		return false, fmt.Errorf(messages.BrowserGetCheckedFmt, selector, err)
	}
	return checked, nil
}

// SetChecked clicks the element when its checked state differs from want,
// so the page sees a real interaction rather than a mutated property.
func (d *Driver) SetChecked(selector string, want bool) error {
	current, err := d.Checked(selector)
	if err != nil {
		return fmt.Errorf(messages.BrowserSetCheckedFmt, selector, want, err)
	}
	if current == want {
		return nil
	}
	if err := d.Click(selector); err != nil {
		return fmt.Errorf(messages.BrowserSetCheckedFmt, selector, want, err)
	}
	return nil
}

// SetInputText types text into the input matching selector. With appendText
// false the field is cleared first; with valueCheck true the resulting
// value is read back and compared. Appended fields skip the value check,
// the caller verifies those via WaitVal.
func (d *Driver) SetInputText(selector string, text string, appendText bool, valueCheck bool) error {
	actions := []chromedp.Action{chromedp.Focus(selector, chromedp.ByQuery)}
	if !appendText {
		actions = append(actions, chromedp.Evaluate(clearInputExpr(selector), nil))
	}
	actions = append(actions, chromedp.SendKeys(selector, text, chromedp.ByQuery))
	if err := d.run(actions...); err != nil {
		return fmt.Errorf(messages.BrowserSetInputFmt, selector, err)
	}

	if valueCheck && !appendText {
		var got string
		if err := d.run(chromedp.Value(selector, &got, chromedp.ByQuery)); err != nil {
			return fmt.Errorf(messages.BrowserSetInputFmt, selector, err)
		}
		if got != text {
			return fmt.Errorf(messages.BrowserValueCheckFmt, selector, got, text)
		}
	}
	return nil
}

// WaitText blocks until the text content of selector equals text.
func (d *Driver) WaitText(selector string, text string) error {
	err := d.waitFor(textEqualsExpr(selector, text))
	if err == nil {
		return nil
	}
	got, readErr := d.textContent(selector)
	if readErr != nil {
		got = fmt.Sprintf("<%v>", readErr)
	}
	return fmt.Errorf(messages.BrowserWaitTextFmt, selector, mismatch(text, got, err))
}

// WaitInText blocks until the text content of selector contains text.
func (d *Driver) WaitInText(selector string, text string) error {
	if err := d.waitFor(textContainsExpr(selector, text)); err != nil {
		return fmt.Errorf(messages.BrowserWaitInTextFmt, selector, text, err)
	}
	return nil
}

// WaitVisible blocks until selector matches a visible element.
func (d *Driver) WaitVisible(selector string) error {
	if err := d.run(chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return fmt.Errorf(messages.BrowserWaitVisibleFmt, selector, err)
	}
	return nil
}

// WaitNotPresent blocks until no element matches selector.
func (d *Driver) WaitNotPresent(selector string) error {
	if err := d.waitFor(notPresentExpr(selector)); err != nil {
		return fmt.Errorf(messages.BrowserWaitGoneFmt, selector, err)
	}
	return nil
}

// WaitAttrContains blocks until the attribute attr of selector contains value.
func (d *Driver) WaitAttrContains(selector string, attr string, value string) error {
	if err := d.waitFor(attrContainsExpr(selector, attr, value)); err != nil {
		return fmt.Errorf(messages.BrowserWaitAttrFmt, selector, attr, value, err)
	}
	return nil
}

// WaitVal blocks until the input matching selector holds value.
func (d *Driver) WaitVal(selector string, value string) error {
	err := d.waitFor(valueEqualsExpr(selector, value))
	if err == nil {
		return nil
	}
	var got string
	if readErr := d.run(chromedp.Value(selector, &got, chromedp.ByQuery)); readErr != nil {
		got = fmt.Sprintf("<%v>", readErr)
	}
	return fmt.Errorf(messages.BrowserWaitValFmt, selector, mismatch(value, got, err))
}

// Screenshot captures a full-page screenshot.
func (d *Driver) Screenshot() ([]byte, error) {
	var buf []byte
	if err := d.run(chromedp.FullScreenshot(&buf, 90)); err != nil {
		return nil, fmt.Errorf(messages.BrowserScreenshotFmt, err)
	}
	return buf, nil
}

// run executes actions against the session under the driver timeout.
func (d *Driver) run(actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// waitFor polls expr (a JS expression evaluating to a boolean) until it
// reports true or the driver timeout elapses.
func (d *Driver) waitFor(expr string) error {
	deadline := time.Now().Add(d.timeout)
	for {
		var ok bool
		err := d.run(chromedp.Evaluate(expr, &ok))
		if err == nil && ok {
			return nil
		}
		if time.Now().After(deadline) {
			if err != nil {
				return err
			}
			return fmt.Errorf(messages.BrowserTimeoutFmt, d.timeout)
		}
		select {
		case <-d.ctx.Done():
			return d.ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// textContent reads the trimmed text content of selector.
func (d *Driver) textContent(selector string) (string, error) {
	var text string
	if err := d.run(chromedp.Evaluate(textExpr(selector), &text)); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// mismatch renders a want/got failure, using a unified diff for multi-line
// values where a plain pair of quoted strings is unreadable.
func mismatch(want string, got string, cause error) string {
	if strings.Contains(want, "\n") || strings.Contains(got, "\n") {
		return fmt.Sprintf("%v\n%s", cause, udiff.Unified("want", "got", want+"\n", got+"\n"))
	}
	return fmt.Sprintf("%v: want %q, got %q", cause, want, got)
}
