package ofx

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"

	"github.com/ledgerkit/ofx/mcc"
)

// warn records a field-level problem on the given warning list. Under
// fail-fast the warning is promoted to a fatal error and returned; otherwise
// the return is nil and parsing continues. Every optional-field problem goes
// through here so the promotion rule is uniform.
func (p *Parser) warn(warnings *[]string, tag, reason string) error {
	w := &FieldWarning{Tag: tag, Reason: reason}
	*warnings = append(*warnings, w.Error())
	glog.V(3).Info(w.Error())
	if p.failFast {
		return w
	}
	return nil
}

// optionalText extracts an optional leaf value. An absent tag is simply the
// zero value; a present but empty tag is a field warning.
func (p *Parser) optionalText(n *Node, tag string, warnings *[]string) (string, error) {
	text, present := n.findText(tag)
	if !present {
		return "", nil
	}
	if strings.TrimSpace(text) == "" {
		return "", p.warn(warnings, tag, "present but empty")
	}
	return strings.TrimSpace(text), nil
}

// optionalDate extracts an optional date leaf. All-zero date tokens mean
// "no date" and are not warnings.
func (p *Parser) optionalDate(n *Node, tag string, warnings *[]string) (*time.Time, error) {
	text, present := n.findText(tag)
	if !present {
		return nil, nil
	}
	if strings.TrimSpace(text) == "" {
		return nil, p.warn(warnings, tag, "present but empty")
	}
	t, err := ParseDate(text)
	if err != nil {
		return nil, p.warn(warnings, tag, "unparseable date "+strconv.Quote(text))
	}
	return t, nil
}

// optionalAmount extracts an optional decimal leaf.
func (p *Parser) optionalAmount(n *Node, tag string, warnings *[]string) (decimal.Decimal, error) {
	text, present := n.findText(tag)
	if !present {
		return decimal.Zero, nil
	}
	if strings.TrimSpace(text) == "" {
		return decimal.Zero, p.warn(warnings, tag, "present but empty")
	}
	d, err := ParseAmount(text)
	if err != nil {
		return decimal.Zero, p.warn(warnings, tag, "unparseable amount "+strconv.Quote(text))
	}
	return d, nil
}

// requiredText extracts a leaf the model cannot function without. Missing
// or empty values are extraction errors regardless of the fail-fast mode.
func requiredText(n *Node, tag string) (string, error) {
	text, present := n.findText(tag)
	if !present {
		return "", &ExtractionError{Tag: tag, Reason: "required field is missing"}
	}
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Tag: tag, Reason: "required field is empty"}
	}
	return strings.TrimSpace(text), nil
}

// requiredDate extracts a date leaf the model cannot function without. An
// all-zero token is a content error here, not an absent value.
func requiredDate(n *Node, tag string) (*time.Time, error) {
	text, err := requiredText(n, tag)
	if err != nil {
		return nil, err
	}
	t, perr := ParseDate(text)
	if perr != nil {
		return nil, &ExtractionError{Tag: tag, Value: text, Reason: "unparseable date"}
	}
	if t == nil {
		return nil, &ExtractionError{Tag: tag, Value: text, Reason: "required date is all-zero"}
	}
	return t, nil
}

// extract walks the document tree and populates doc.
func (p *Parser) extract(root *Node, doc *Document) error {
	signOn, err := p.parseSignOn(root, doc)
	if err != nil {
		return err
	}
	doc.SignOn = signOn

	var institution *Institution
	if signOn != nil && (signOn.Org != "" || signOn.FID != "") {
		institution = &Institution{Org: signOn.Org, FID: signOn.FID}
	}

	if err := p.parseSecurityList(root, doc); err != nil {
		return err
	}

	containers := 0
	for _, node := range root.FindAll("stmtrs") {
		containers++
		acct, err := p.parseBankAccount(node, AccountBank, institution)
		if err != nil {
			return err
		}
		doc.Accounts = append(doc.Accounts, acct)
	}
	for _, node := range root.FindAll("ccstmtrs") {
		containers++
		acct, err := p.parseBankAccount(node, AccountCreditCard, institution)
		if err != nil {
			return err
		}
		doc.Accounts = append(doc.Accounts, acct)
	}
	for _, node := range root.FindAll("invstmtrs") {
		containers++
		acct, err := p.parseInvestmentAccount(node, institution)
		if err != nil {
			return err
		}
		doc.Accounts = append(doc.Accounts, acct)
	}
	for _, node := range root.FindAll("acctinfo") {
		containers++
		acct, err := p.parseAccountInfo(node, institution)
		if err != nil {
			return err
		}
		if acct != nil {
			doc.Accounts = append(doc.Accounts, acct)
		}
	}
	if containers == 0 {
		return &StructuralError{Reason: "no recognizable statement containers"}
	}
	glog.V(3).Infof("extracted %d accounts from %d containers", len(doc.Accounts), containers)
	return nil
}

// parseSignOn reads the SONRS sign-on response. Missing optional values stay
// at their zero values; CODE is required.
func (p *Parser) parseSignOn(root *Node, doc *Document) (*SignOn, error) {
	sonrs := root.Find("sonrs")
	if sonrs == nil {
		return nil, nil
	}
	signOn := &SignOn{}

	codeText, err := requiredText(sonrs, "code")
	if err != nil {
		return nil, err
	}
	code, err := strconv.Atoi(codeText)
	if err != nil {
		return nil, &ExtractionError{Tag: "CODE", Value: codeText, Reason: "sign-on code is not an integer"}
	}
	signOn.Code = code

	if severity, _ := sonrs.findText("severity"); severity != "" {
		signOn.Severity = Severity(strings.ToUpper(severity))
	}
	// Message defaults to the empty string rather than null.
	signOn.Message, _ = sonrs.findText("message")

	if signOn.Date, err = p.optionalDate(sonrs, "dtserver", &doc.Warnings); err != nil {
		return nil, err
	}
	if signOn.ProfileDate, err = p.optionalDate(sonrs, "dtprofup", &doc.Warnings); err != nil {
		return nil, err
	}
	signOn.Language, _ = sonrs.findText("language")
	if fi := sonrs.Find("fi"); fi != nil {
		signOn.Org, _ = fi.findText("org")
		signOn.FID, _ = fi.findText("fid")
	}
	signOn.IntermediaryID, _ = sonrs.findText("intu.bid")
	return signOn, nil
}

// parseBankAccount extracts one bank or credit card account from a STMTRS
// or CCSTMTRS container.
func (p *Parser) parseBankAccount(node *Node, kind AccountKind, institution *Institution) (*Account, error) {
	acct := &Account{Kind: kind, Institution: institution}

	var err error
	if acct.ID, err = p.optionalText(node, "acctid", &acct.Warnings); err != nil {
		return nil, err
	}
	if acct.RoutingNumber, err = p.optionalText(node, "bankid", &acct.Warnings); err != nil {
		return nil, err
	}
	if acct.BranchID, err = p.optionalText(node, "branchid", &acct.Warnings); err != nil {
		return nil, err
	}
	if acct.Type, err = p.optionalText(node, "accttype", &acct.Warnings); err != nil {
		return nil, err
	}
	acct.Type = strings.ToUpper(acct.Type)
	if acct.Currency, err = p.optionalText(node, "curdef", &acct.Warnings); err != nil {
		return nil, err
	}

	stmt, err := p.parseStatement(node, acct.Currency)
	if err != nil {
		return nil, err
	}
	acct.Statement = stmt
	return acct, nil
}

// parseStatement extracts the statement body shared by bank and credit card
// accounts: the transaction list date range, both balances and every
// transaction.
func (p *Parser) parseStatement(node *Node, currency string) (*Statement, error) {
	stmt := &Statement{Currency: currency}

	var err error
	if stmt.StartDate, err = p.optionalDate(node, "dtstart", &stmt.Warnings); err != nil {
		return nil, err
	}
	if stmt.EndDate, err = p.optionalDate(node, "dtend", &stmt.Warnings); err != nil {
		return nil, err
	}
	if err = p.parseBalance(node, "ledgerbal", &stmt.Balance, &stmt.BalanceDate, &stmt.Warnings); err != nil {
		return nil, err
	}
	if err = p.parseBalance(node, "availbal", &stmt.AvailableBalance, &stmt.AvailableBalanceDate, &stmt.Warnings); err != nil {
		return nil, err
	}

	for _, txnNode := range node.FindAll("stmttrn") {
		txn, err := p.parseTransaction(txnNode, &stmt.Warnings)
		if err != nil {
			if p.failFast {
				return nil, err
			}
			stmt.Discarded = append(stmt.Discarded, DiscardedEntry{Node: txnNode, Reason: err.Error()})
			continue
		}
		stmt.Transactions = append(stmt.Transactions, txn)
	}
	return stmt, nil
}

// parseBalance reads one balance container (LEDGERBAL or AVAILBAL) into the
// given amount and as-of date. The container being absent is fine; a
// present container with an empty or unparseable amount is a field warning.
func (p *Parser) parseBalance(parent *Node, container string, amount *decimal.Decimal, asOf **time.Time, warnings *[]string) error {
	node := parent.Find(container)
	if node == nil {
		return nil
	}
	text, present := node.findText("balamt")
	if !present || strings.TrimSpace(text) == "" {
		return p.warn(warnings, strings.ToUpper(container), "empty balance amount")
	}
	d, err := ParseAmount(text)
	if err != nil {
		return p.warn(warnings, strings.ToUpper(container), "unparseable balance amount "+strconv.Quote(text))
	}
	*amount = d

	date, err := p.optionalDate(node, "dtasof", warnings)
	if err != nil {
		return err
	}
	*asOf = date
	return nil
}

// parseTransaction extracts one STMTTRN. Type, posted date, amount and id
// are non-negotiable; their absence is an extraction error in every mode.
func (p *Parser) parseTransaction(node *Node, warnings *[]string) (*Transaction, error) {
	txn := &Transaction{}

	typeText, err := requiredText(node, "trntype")
	if err != nil {
		return nil, err
	}
	txn.Type = strings.ToLower(typeText)

	if txn.Date, err = requiredDate(node, "dtposted"); err != nil {
		return nil, err
	}

	amountText, err := requiredText(node, "trnamt")
	if err != nil {
		return nil, err
	}
	if txn.Amount, err = ParseAmount(amountText); err != nil {
		return nil, &ExtractionError{Tag: "TRNAMT", Value: amountText, Reason: "unparseable amount"}
	}

	if txn.ID, err = requiredText(node, "fitid"); err != nil {
		return nil, err
	}

	if txn.Payee, err = p.optionalText(node, "name", warnings); err != nil {
		return nil, err
	}
	if txn.Payee == "" {
		if payee := node.Find("payee"); payee != nil {
			txn.Payee, _ = payee.findText("name")
		}
	}
	if txn.Memo, err = p.optionalText(node, "memo", warnings); err != nil {
		return nil, err
	}
	if txn.CheckNum, err = p.optionalText(node, "checknum", warnings); err != nil {
		return nil, err
	}
	if txn.UserDate, err = p.optionalDate(node, "dtuser", warnings); err != nil {
		return nil, err
	}
	if txn.SIC, err = p.optionalText(node, "sic", warnings); err != nil {
		return nil, err
	}
	if txn.SIC != "" {
		// A lookup miss is not an error, the description just stays empty.
		txn.MCCDescription = mcc.Description(txn.SIC)
	}
	return txn, nil
}

// parseAccountInfo extracts one ACCTINFO entry from an account information
// listing. Each entry nests exactly one of INVACCTINFO, CCACCTINFO or
// BANKACCTINFO; entries carrying none of them are skipped.
func (p *Parser) parseAccountInfo(node *Node, institution *Institution) (*Account, error) {
	var (
		acct *Account
		err  error
	)
	switch {
	case node.Find("invacctinfo") != nil:
		info := node.Find("invacctinfo")
		acct = &Account{Kind: AccountInvestment, Institution: institution}
		if acct.ID, err = p.optionalText(info, "acctid", &acct.Warnings); err != nil {
			return nil, err
		}
		if acct.BrokerID, err = p.optionalText(info, "brokerid", &acct.Warnings); err != nil {
			return nil, err
		}
	case node.Find("ccacctinfo") != nil:
		info := node.Find("ccacctinfo")
		acct = &Account{Kind: AccountCreditCard, Institution: institution}
		if acct.ID, err = p.optionalText(info, "acctid", &acct.Warnings); err != nil {
			return nil, err
		}
	case node.Find("bankacctinfo") != nil:
		info := node.Find("bankacctinfo")
		acct = &Account{Kind: AccountBank, Institution: institution}
		if acct.ID, err = p.optionalText(info, "acctid", &acct.Warnings); err != nil {
			return nil, err
		}
		if acct.RoutingNumber, err = p.optionalText(info, "bankid", &acct.Warnings); err != nil {
			return nil, err
		}
		if acct.Type, err = p.optionalText(info, "accttype", &acct.Warnings); err != nil {
			return nil, err
		}
		acct.Type = strings.ToUpper(acct.Type)
	default:
		glog.V(3).Info("skipping ACCTINFO entry with no account info aggregate")
		return nil, nil
	}
	if acct.Description, err = p.optionalText(node, "desc", &acct.Warnings); err != nil {
		return nil, err
	}
	return acct, nil
}

// parseSecurityList collects every SECINFO into the document's security
// list. Unique id and name are required; in best-effort mode an entry
// missing either is dropped with a document-level warning.
func (p *Parser) parseSecurityList(root *Node, doc *Document) error {
	for _, node := range root.FindAll("secinfo") {
		security := &Security{}
		var err error
		if security.UniqueID, err = requiredText(node, "uniqueid"); err == nil {
			security.Name, err = requiredText(node, "secname")
		}
		if err != nil {
			if p.failFast {
				return err
			}
			doc.Warnings = append(doc.Warnings, "dropped security list entry: "+err.Error())
			continue
		}
		if security.Ticker, err = p.optionalText(node, "ticker", &doc.Warnings); err != nil {
			return err
		}
		if security.Memo, err = p.optionalText(node, "memo", &doc.Warnings); err != nil {
			return err
		}
		doc.Securities = append(doc.Securities, security)
	}
	return nil
}
