package reconcile

// FieldKind identifies the semantic type of a field and therefore the
// comparator that judges it.
type FieldKind string

// Field kinds, one per comparator.
const (
	KindDate         FieldKind = "date"
	KindAmount       FieldKind = "amount"
	KindCurrencySet  FieldKind = "currency_set"
	KindListLike     FieldKind = "list_like"
	KindOrganization FieldKind = "organization"
	KindFio          FieldKind = "fio"
	KindGenericText  FieldKind = "generic_text"
)

// String returns the string representation of a field kind.
func (k FieldKind) String() string {
	return string(k)
}

// DefaultKinds maps the field names the extraction pipeline emits to
// their semantic kinds. Field names outside this table degrade to
// case-insensitive generic text comparison rather than erroring.
//
// The table is resolved once at construction; a Comparer never consults
// it dynamically after New.
var DefaultKinds = map[string]FieldKind{
	// Dates
	"issue_date":    KindDate,
	"signing_date":  KindDate,
	"expiry_date":   KindDate,
	"contract_date": KindDate,
	"birth_date":    KindDate,

	// Amounts
	"amount":           KindAmount,
	"contract_amount":  KindAmount,
	"loan_amount":      KindAmount,
	"collateral_value": KindAmount,
	"monthly_income":   KindAmount,

	// Currency sets
	"currency":   KindCurrencySet,
	"currencies": KindCurrencySet,

	// Generic list-likes
	"signatories":     KindListLike,
	"beneficiaries":   KindListLike,
	"account_numbers": KindListLike,

	// Organizations
	"organization":      KindOrganization,
	"organization_name": KindOrganization,
	"counterparty":      KindOrganization,
	"bank_name":         KindOrganization,
	"employer":          KindOrganization,

	// Full names
	"fio":          KindFio,
	"client_fio":   KindFio,
	"director_fio": KindFio,
	"signer_fio":   KindFio,
}
