/*
Package ofx parses OFX/QFX financial statement files into a typed model of
accounts, statements, transactions, investment positions and securities.

ofx attempts to parse OFX data files which deviate from the OFX spec by
omitting closing tags, mixing encodings or using locale-ambiguous decimal
formats. The tag soup body is first rewritten into well formed markup, a
generic tree is built from it, and the typed model is extracted from the tree
with a per-field recovery policy that is either fail-fast or best-effort.
*/
package ofx
