package ofx

import "sync"

var aggregatesMap map[string]struct{}
var initAggregatesMap sync.Once

// GetAggregates returns the singleton set of known OFX aggregate (container)
// tag names. Aggregates hold nested elements, never bare text, so the
// normalizer never treats them as auto-closing leaves even when a document
// omits their closing tags entirely.
func GetAggregates() map[string]struct{} {
	initAggregatesMap.Do(func() {
		var aggregates = []string{
			"OFX",
			// Sign-on.
			"SIGNONMSGSRSV1", "SONRS", "STATUS", "FI",
			// Bank and credit card statements.
			"BANKMSGSRSV1", "CREDITCARDMSGSRSV1",
			"STMTTRNRS", "CCSTMTTRNRS", "STMTRS", "CCSTMTRS",
			"BANKACCTFROM", "CCACCTFROM", "BANKACCTTO", "CCACCTTO",
			"BANKTRANLIST", "STMTTRN", "LEDGERBAL", "AVAILBAL",
			"CURRENCY", "ORIGCURRENCY", "PAYEE",
			// Account information listings.
			"SIGNUPMSGSRSV1", "ACCTINFOTRNRS", "ACCTINFORS", "ACCTINFO",
			"BANKACCTINFO", "CCACCTINFO", "INVACCTINFO",
			// Investment statements.
			"INVSTMTMSGSRSV1", "INVSTMTTRNRS", "INVSTMTRS", "INVACCTFROM",
			"INVTRANLIST", "INVPOSLIST", "INVBAL", "INVPOS", "INVTRAN",
			"INVBUY", "INVSELL", "INVBANKTRAN", "SECID",
			"BUYMF", "SELLMF", "BUYSTOCK", "SELLSTOCK",
			"BUYDEBT", "SELLDEBT", "BUYOPT", "SELLOPT",
			"BUYOTHER", "SELLOTHER", "REINVEST", "INCOME", "TRANSFER",
			"POSMF", "POSSTOCK", "POSDEBT", "POSOPT", "POSOTHER",
			// Security list.
			"SECLISTMSGSRSV1", "SECLIST", "SECINFO",
			"MFINFO", "STOCKINFO", "DEBTINFO", "OPTINFO", "OTHERINFO",
		}
		aggregatesMap = make(map[string]struct{}, len(aggregates))
		for _, a := range aggregates {
			aggregatesMap[a] = struct{}{}
		}
	})
	return aggregatesMap
}

// IsAggregate returns true if the given tag is a known aggregate tag.
func IsAggregate(tag string) bool {
	_, found := GetAggregates()[tag]
	return found
}
