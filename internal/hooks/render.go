package hooks

import (
	"html/template"
	"strings"
)

// Hook names form the public contract with the storefront theme.
const (
	DisplayHeader                = "displayHeader"
	DisplayProductActions        = "displayProductActions"
	DisplayProductAdditionalInfo = "displayProductAdditionalInfo"
)

// NewDefaultRegistry wires the three storefront hooks: the price-hiding
// CSS, the quote button with its modal form, and the short product-page
// strip.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(DisplayHeader, renderHeader)
	r.Register(DisplayProductActions, renderProductActions)
	r.Register(DisplayProductAdditionalInfo, renderAdditionalInfo)
	return r
}

// headerSnippet suppresses the buy affordances and styles the quote button.
// Selectors cover the common storefront themes.
const headerSnippet = `<style>
.product-prices, .product-price, .current-price,
.product-add-to-cart, .add-to-cart, .product-quantity {
    display: none !important;
}
.request-quote-section {
    margin: 20px 0;
    text-align: center;
}
.request-quote-btn {
    background: linear-gradient(135deg, #007bff 0%, #0056b3 100%);
    border: none;
    color: #fff;
    padding: 12px 24px;
    border-radius: 4px;
    cursor: pointer;
}
.request-quote-btn:hover {
    background: linear-gradient(135deg, #0056b3 0%, #004085 100%);
}
</style>`

func renderHeader(RenderContext) (string, error) {
	return headerSnippet, nil
}

var productActionsTmpl = template.Must(template.New("productActions").Parse(`<div class="request-quote-section">
  <button type="button" class="btn btn-primary btn-lg request-quote-btn" data-toggle="modal" data-target="#requestQuoteModal_{{.ProductID}}">
    Request a Quote
  </button>
  <div class="modal fade" id="requestQuoteModal_{{.ProductID}}" tabindex="-1" role="dialog">
    <div class="modal-dialog modal-lg" role="document">
      <div class="modal-content">
        <div class="modal-header">
          <h5 class="modal-title">Request Quote for {{.ProductName}}</h5>
          <button type="button" class="close" data-dismiss="modal"><span>&times;</span></button>
        </div>
        <div class="modal-body">
          <form class="request-quote-form" method="post" action="{{.SubmitURL}}">
            <input type="hidden" name="product_id" value="{{.ProductID}}">
            <input type="hidden" name="form_token" value="{{.FormToken}}">
            <div class="form-group">
              <label>Full Name *</label>
              <input type="text" class="form-control" name="client_name" required>
            </div>
            <div class="form-group">
              <label>Email *</label>
              <input type="email" class="form-control" name="email" required>
            </div>
            <div class="form-group">
              <label>Phone Number</label>
              <input type="tel" class="form-control" name="phone">
            </div>
            <div class="form-group">
              <label>Additional Notes</label>
              <textarea class="form-control" name="message" rows="3" placeholder="Any specific requirements or questions..."></textarea>
            </div>
            <button type="submit" class="btn btn-primary submit-quote-btn">Submit Quote Request</button>
          </form>
        </div>
      </div>
    </div>
  </div>
</div>`))

func renderProductActions(ctx RenderContext) (string, error) {
	var b strings.Builder
	if err := productActionsTmpl.Execute(&b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}

var additionalInfoTmpl = template.Must(template.New("additionalInfo").Parse(`<div class="request-quote-info alert alert-info">
  Interested in {{.ProductName}}? Prices are available on request. Use the
  <strong>Request a Quote</strong> button and we will get back to you.
</div>`))

func renderAdditionalInfo(ctx RenderContext) (string, error) {
	var b strings.Builder
	if err := additionalInfoTmpl.Execute(&b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}
