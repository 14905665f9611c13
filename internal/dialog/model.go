package dialog

type State string

const (
	StateIdle State = "idle"

	// Sign in / sign up
	StateAuthEmail    State = "auth_email"
	StateAuthPassword State = "auth_password"
	StateRegName      State = "reg_name"
	StateRegEmail     State = "reg_email"
	StateRegPassword  State = "reg_password"

	// Inventory screen
	StateInvSearch      State = "inv_search"       // typing filters the parts list
	StateInvNewName     State = "inv_new_name"     // create flow, field by field
	StateInvNewSKU      State = "inv_new_sku"
	StateInvNewCategory State = "inv_new_category"
	StateInvNewQty      State = "inv_new_qty"
	StateInvNewPrice    State = "inv_new_price"
	StateInvNewMinStock State = "inv_new_minstock"
	StateInvNewLocation State = "inv_new_location"
	StateInvEditValue   State = "inv_edit_value" // new value for the picked field

	// Sales screen
	StateSaleSearch   State = "sale_search"   // typing searches parts for the cart
	StateSaleCustomer State = "sale_customer" // customer name before checkout

	// History and account screens
	StateHistFilter  State = "hist_filter" // customer-name substring
	StateAccName     State = "acc_name"
	StateAccEmail    State = "acc_email"
	StateAccPassword State = "acc_password"
)

type Payload map[string]any

type Item struct {
	ChatID  int64
	State   State
	Payload Payload
}

// GetString reads a string value out of a payload that went through JSON.
func GetString(p Payload, key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt reads a numeric payload value; JSON round-trips numbers as float64.
func GetInt(p Payload, key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return int(f), ok
}
