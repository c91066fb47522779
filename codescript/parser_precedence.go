package codescript

const (
	lowestPrec = iota
	precBoolean
	precComparison
	precSum
	precProduct
	precPrefix
)

var precedences = map[TokenType]int{
	tokenAnd:      precBoolean,
	tokenOr:       precBoolean,
	tokenXor:      precBoolean,
	tokenEQ:       precComparison,
	tokenNotEQ:    precComparison,
	tokenLT:       precComparison,
	tokenLTE:      precComparison,
	tokenGT:       precComparison,
	tokenGTE:      precComparison,
	tokenPlus:     precSum,
	tokenMinus:    precSum,
	tokenAmp:      precSum,
	tokenSlash:    precProduct,
	tokenAsterisk: precProduct,
	tokenPercent:  precProduct,
}
