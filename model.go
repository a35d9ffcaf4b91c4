package ofx

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Severity is the sign-on status severity as per the OFX Spec 2.2
// Section 3.1.5.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// SignOn is the parsed SONRS sign-on response.
type SignOn struct {
	Code           int
	Severity       Severity
	Message        string
	Date           *time.Time
	Language       string
	ProfileDate    *time.Time
	Org            string
	FID            string
	IntermediaryID string
}

// Success reports whether the server accepted the request.
func (s *SignOn) Success() bool { return s.Code == 0 }

// AccountKind is the broad category of an account, derived from which
// statement container the account was found in.
type AccountKind int

const (
	AccountUnknown AccountKind = iota
	AccountBank
	AccountCreditCard
	AccountInvestment
)

func (k AccountKind) String() string {
	switch k {
	case AccountBank:
		return "Bank"
	case AccountCreditCard:
		return "CreditCard"
	case AccountInvestment:
		return "Investment"
	}
	return "Unknown"
}

// Institution identifies the financial institution a file came from. It is
// a value shared by reference across every account in one document.
type Institution struct {
	Org string
	FID string
}

// Account is one account found in a document. Exactly one of Statement or
// InvStatement is set, matching Kind.
type Account struct {
	ID            string
	RoutingNumber string
	BranchID      string
	BrokerID      string
	Kind          AccountKind
	Type          string
	Currency      string
	Description   string
	Institution   *Institution
	Statement     *Statement
	InvStatement  *InvestmentStatement
	Warnings      []string
}

// DiscardedEntry records an entry dropped in best-effort mode, keeping the
// original node snapshot alongside the error that disqualified it so the
// caller can audit the completeness of the parse.
type DiscardedEntry struct {
	Node   *Node
	Reason string
}

// Statement is a bank or credit card statement. Nil dates mean the value
// was absent from the document.
type Statement struct {
	StartDate            *time.Time
	EndDate              *time.Time
	Currency             string
	Balance              decimal.Decimal
	BalanceDate          *time.Time
	AvailableBalance     decimal.Decimal
	AvailableBalanceDate *time.Time
	Transactions         []*Transaction
	Discarded            []DiscardedEntry
	Warnings             []string
}

// Transaction is a single bank or card transaction. Date, Amount and ID are
// always populated; everything else is optional.
type Transaction struct {
	Type           string
	Date           *time.Time
	UserDate       *time.Time
	Amount         decimal.Decimal
	ID             string
	Payee          string
	Memo           string
	CheckNum       string
	SIC            string
	MCCDescription string
}

// DedupKey returns the identity tuple used to deduplicate transactions
// across overlapping downloads. FITIDs drift from download to download in
// their trailing characters, so only the first idPrefixLen bytes of the id
// participate.
func (t *Transaction) DedupKey(idPrefixLen int) string {
	id := t.ID
	if idPrefixLen >= 0 && idPrefixLen < len(id) {
		id = id[:idPrefixLen]
	}
	date := ""
	if t.Date != nil {
		date = t.Date.UTC().Format("20060102150405")
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s", t.Type, date, t.Amount.String(), t.Memo, t.Payee, id, t.CheckNum)
}

// InvTransactionType is the closed set of investment transaction kinds,
// determined by the element's own tag name.
type InvTransactionType int

const (
	InvUnknown InvTransactionType = iota
	InvBuyMF
	InvSellMF
	InvReinvest
	InvBuyStock
	InvSellStock
	InvIncome
	InvTransfer
)

func (t InvTransactionType) String() string {
	switch t {
	case InvBuyMF:
		return "BuyMF"
	case InvSellMF:
		return "SellMF"
	case InvReinvest:
		return "Reinvest"
	case InvBuyStock:
		return "BuyStock"
	case InvSellStock:
		return "SellStock"
	case InvIncome:
		return "Income"
	case InvTransfer:
		return "Transfer"
	}
	return "Unknown"
}

// InvestmentTransaction is a single trade, income event or transfer from an
// investment statement. SecurityID joins against the document's security
// list.
type InvestmentTransaction struct {
	Type           InvTransactionType
	ID             string
	TradeDate      *time.Time
	SettleDate     *time.Time
	SecurityID     string
	Units          decimal.Decimal
	UnitPrice      decimal.Decimal
	Commission     decimal.Decimal
	Fees           decimal.Decimal
	Total          decimal.Decimal
	IncomeType     string
	TransferAction string
	Source         string
	Memo           string
}

// Position is a security holding as of a date.
type Position struct {
	SecurityID  string
	Units       decimal.Decimal
	UnitPrice   decimal.Decimal
	MarketValue decimal.Decimal
	Date        *time.Time
}

// InvestmentStatement is the investment counterpart of Statement.
// CashPosition is synthesized from the available-cash balance when one is
// reported.
type InvestmentStatement struct {
	StartDate     *time.Time
	EndDate       *time.Time
	Currency      string
	Positions     []*Position
	Transactions  []*InvestmentTransaction
	AvailableCash decimal.Decimal
	CashPosition  *Position
	Discarded     []DiscardedEntry
	Warnings      []string
}

// Security is one entry of the document's security list. UniqueID is the
// join key used by positions and investment transactions.
type Security struct {
	UniqueID string
	Name     string
	Ticker   string
	Memo     string
}

// Document is a fully parsed OFX/QFX file. Warnings collects document-level
// problems, such as a malformed sign-on timestamp, that have no narrower
// entity to land on.
type Document struct {
	Headers    Headers
	SignOn     *SignOn
	Accounts   []*Account
	Securities []*Security
	Warnings   []string
}

// Account returns the primary account, the first one found in the document,
// or nil when the document carried none.
func (d *Document) Account() *Account {
	if len(d.Accounts) == 0 {
		return nil
	}
	return d.Accounts[0]
}

// SecurityByID resolves a security unique id against the document's
// security list. Ids absent from the list resolve to a synthesized unknown
// security rather than nil, so callers can join unconditionally.
func (d *Document) SecurityByID(id string) *Security {
	for _, s := range d.Securities {
		if s.UniqueID == id {
			return s
		}
	}
	return &Security{UniqueID: id, Name: "Unknown security " + id}
}
