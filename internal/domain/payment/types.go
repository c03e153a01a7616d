package payment

type Method string

const (
	MethodCard   Method = "card"
	MethodEsewa  Method = "esewa"
	MethodKhalti Method = "khalti"
)

func NewMethod(s string) (Method, error) {
	m := Method(s)
	switch m {
	case MethodCard, MethodEsewa, MethodKhalti:
		return m, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string { return string(m) }

type Provider string

const (
	ProviderStripe Provider = "stripe"
	ProviderEsewa  Provider = "esewa"
	ProviderKhalti Provider = "khalti"
)

func NewProvider(s string) (Provider, error) {
	p := Provider(s)
	switch p {
	case ProviderStripe, ProviderEsewa, ProviderKhalti:
		return p, nil
	default:
		return "", ErrInvalidProvider
	}
}

func (p Provider) String() string { return string(p) }

type IntentStatus string

const (
	IntentRequiresPaymentMethod IntentStatus = "requires_payment_method"
	IntentSucceeded             IntentStatus = "succeeded"
	IntentFailed                IntentStatus = "failed"
)

func (s IntentStatus) String() string { return string(s) }
