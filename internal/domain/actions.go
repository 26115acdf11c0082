package domain

// Field names a top-level scalar field addressable through UpdateField.
// The set is closed: an UpdateField carrying any other value reduces to an
// identity transition.
type Field string

const (
	FieldInvoiceNumber Field = "invoiceNumber"
	FieldDate          Field = "date"
	FieldDueDate       Field = "dueDate"
	FieldCurrency      Field = "currency"
	FieldLocale        Field = "locale"
	FieldTaxRate       Field = "taxRate"
	FieldNotes         Field = "notes"
)

// ItemField names a line item field addressable through UpdateItem.
type ItemField string

const (
	ItemDescription ItemField = "description"
	ItemQuantity    ItemField = "quantity"
	ItemRate        ItemField = "rate"
)

// Action is one discrete edit applied to an Invoice by Reduce.
type Action interface{ isAction() }

// UpdateSender replaces the sender contact block.
type UpdateSender struct{ Details string }

// UpdateClient replaces the client ("bill to") contact block.
type UpdateClient struct{ Details string }

// UpdateField sets a top-level scalar field. Values for FieldTaxRate pass
// through SafeNum; everything else is assigned verbatim.
type UpdateField struct {
	Field Field
	Value string
}

// AddItem appends a fresh empty line item to the end of the list.
type AddItem struct{}

// RemoveItem deletes the line item with the given id. Removing an unknown
// id, or the last remaining item, changes nothing.
type RemoveItem struct{ ID string }

// UpdateItem sets one field on the line item with the given id. Values for
// ItemQuantity and ItemRate pass through SafeNum.
type UpdateItem struct {
	ID    string
	Field ItemField
	Value string
}

// Reset discards the draft and starts over from the default state.
type Reset struct{}

func (UpdateSender) isAction() {}
func (UpdateClient) isAction() {}
func (UpdateField) isAction()  {}
func (AddItem) isAction()      {}
func (RemoveItem) isAction()   {}
func (UpdateItem) isAction()   {}
func (Reset) isAction()        {}
