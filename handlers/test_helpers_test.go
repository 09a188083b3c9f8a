package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFormRequest builds a urlencoded POST request.
func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// validOrderForm is the form the page submits with its defaults plus a client.
func validOrderForm() url.Values {
	form := url.Values{}
	form.Set("furniture_type", "Chair")
	form.Set("length", "50")
	form.Set("width", "40")
	form.Set("height", "90")
	form.Set("quantity", "1")
	form.Set("client_name", "Acme Ltd")
	form.Set("client_email", "buyer@acme.example")
	form.Set("client_phone", "85212345678")
	return form
}
