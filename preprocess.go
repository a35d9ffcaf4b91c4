package ofx

import "regexp"

// Some institutions close CURDEF and then start listing BANKID et al without
// ever opening BANKACCTFROM.
var missingAcctFrom = regexp.MustCompile(`(</CURDEF>\s+)(<BANKID>)`)

// preprocessBody applies one-off transforms to fix bad data seen in the
// wild before normalization.
func preprocessBody(content []byte) []byte {
	return missingAcctFrom.ReplaceAll(content, []byte("$1<BANKACCTFROM>$2"))
}
