package ofx

import (
	"strings"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"
)

// invTxnKinds maps an investment transaction element's own tag name to its
// type. Tags outside this table parse as InvUnknown rather than failing.
var invTxnKinds = map[string]InvTransactionType{
	"buymf":     InvBuyMF,
	"sellmf":    InvSellMF,
	"reinvest":  InvReinvest,
	"buystock":  InvBuyStock,
	"sellstock": InvSellStock,
	"income":    InvIncome,
	"transfer":  InvTransfer,
}

// parseInvestmentAccount extracts one investment account from an INVSTMTRS
// container.
func (p *Parser) parseInvestmentAccount(node *Node, institution *Institution) (*Account, error) {
	acct := &Account{Kind: AccountInvestment, Institution: institution}

	var err error
	if acct.ID, err = p.optionalText(node, "acctid", &acct.Warnings); err != nil {
		return nil, err
	}
	if acct.BrokerID, err = p.optionalText(node, "brokerid", &acct.Warnings); err != nil {
		return nil, err
	}
	if acct.Currency, err = p.optionalText(node, "curdef", &acct.Warnings); err != nil {
		return nil, err
	}

	stmt, err := p.parseInvestmentStatement(node, acct.Currency)
	if err != nil {
		return nil, err
	}
	acct.InvStatement = stmt
	return acct, nil
}

// parseInvestmentStatement extracts the transaction list, position list and
// balances of an investment statement.
func (p *Parser) parseInvestmentStatement(node *Node, currency string) (*InvestmentStatement, error) {
	stmt := &InvestmentStatement{Currency: currency}
	var err error

	if tranList := node.Find("invtranlist"); tranList != nil {
		if stmt.StartDate, err = p.optionalDate(tranList, "dtstart", &stmt.Warnings); err != nil {
			return nil, err
		}
		if stmt.EndDate, err = p.optionalDate(tranList, "dtend", &stmt.Warnings); err != nil {
			return nil, err
		}
		for _, child := range tranList.Children {
			if child.Name == "dtstart" || child.Name == "dtend" {
				continue
			}
			txn, err := p.parseInvestmentTransaction(child, &stmt.Warnings)
			if err != nil {
				if p.failFast {
					return nil, err
				}
				stmt.Discarded = append(stmt.Discarded, DiscardedEntry{Node: child, Reason: err.Error()})
				continue
			}
			stmt.Transactions = append(stmt.Transactions, txn)
		}
	}

	if posList := node.Find("invposlist"); posList != nil {
		for _, child := range posList.Children {
			if !strings.HasPrefix(child.Name, "pos") {
				continue
			}
			pos, err := p.parsePosition(child, &stmt.Warnings)
			if err != nil {
				if p.failFast {
					return nil, err
				}
				stmt.Discarded = append(stmt.Discarded, DiscardedEntry{Node: child, Reason: err.Error()})
				continue
			}
			stmt.Positions = append(stmt.Positions, pos)
		}
	}

	if invBal := node.Find("invbal"); invBal != nil {
		if stmt.AvailableCash, err = p.optionalAmount(invBal, "availcash", &stmt.Warnings); err != nil {
			return nil, err
		}
		if !stmt.AvailableCash.IsZero() {
			// Derived convenience holding so cash shows up alongside real
			// positions.
			stmt.CashPosition = &Position{
				SecurityID:  "CASH",
				Units:       stmt.AvailableCash,
				UnitPrice:   decimal.New(1, 0),
				MarketValue: stmt.AvailableCash,
			}
		}
	}
	glog.V(3).Infof("investment statement: %d transactions, %d positions", len(stmt.Transactions), len(stmt.Positions))
	return stmt, nil
}

// parseInvestmentTransaction extracts one entry of INVTRANLIST. The entry's
// tag name selects the type; FITID and trade date are required, every
// other field populates only when present.
func (p *Parser) parseInvestmentTransaction(node *Node, warnings *[]string) (*InvestmentTransaction, error) {
	txn := &InvestmentTransaction{Type: invTxnKinds[node.Name]}

	var err error
	if txn.ID, err = requiredText(node, "fitid"); err != nil {
		return nil, err
	}
	if txn.TradeDate, err = requiredDate(node, "dttrade"); err != nil {
		return nil, err
	}
	if txn.SettleDate, err = p.optionalDate(node, "dtsettle", warnings); err != nil {
		return nil, err
	}
	if secID := node.Find("secid"); secID != nil {
		if txn.SecurityID, err = p.optionalText(secID, "uniqueid", warnings); err != nil {
			return nil, err
		}
	}
	if txn.Units, err = p.optionalAmount(node, "units", warnings); err != nil {
		return nil, err
	}
	if txn.UnitPrice, err = p.optionalAmount(node, "unitprice", warnings); err != nil {
		return nil, err
	}
	if txn.Commission, err = p.optionalAmount(node, "commission", warnings); err != nil {
		return nil, err
	}
	if txn.Fees, err = p.optionalAmount(node, "fees", warnings); err != nil {
		return nil, err
	}
	if txn.Total, err = p.optionalAmount(node, "total", warnings); err != nil {
		return nil, err
	}
	if txn.IncomeType, err = p.optionalText(node, "incometype", warnings); err != nil {
		return nil, err
	}
	if txn.TransferAction, err = p.optionalText(node, "tferaction", warnings); err != nil {
		return nil, err
	}
	txn.TransferAction = strings.ToUpper(txn.TransferAction)
	if txn.Source, err = p.optionalText(node, "inv401ksource", warnings); err != nil {
		return nil, err
	}
	if txn.Memo, err = p.optionalText(node, "memo", warnings); err != nil {
		return nil, err
	}
	return txn, nil
}

// parsePosition extracts one POSMF/POSSTOCK/POSOTHER style holding. The
// security unique id is the join key and is required; the numeric fields
// are tolerant.
func (p *Parser) parsePosition(node *Node, warnings *[]string) (*Position, error) {
	pos := &Position{}

	id, err := requiredText(node, "uniqueid")
	if err != nil {
		return nil, err
	}
	pos.SecurityID = id

	if pos.Units, err = p.optionalAmount(node, "units", warnings); err != nil {
		return nil, err
	}
	if pos.UnitPrice, err = p.optionalAmount(node, "unitprice", warnings); err != nil {
		return nil, err
	}
	if pos.MarketValue, err = p.optionalAmount(node, "mktval", warnings); err != nil {
		return nil, err
	}
	if pos.Date, err = p.optionalDate(node, "dtpriceasof", warnings); err != nil {
		return nil, err
	}
	return pos, nil
}
