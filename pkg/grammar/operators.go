package grammar

import "github.com/aybehrouz/noir/pkg/token"

// EqualityOperators bind at spi.PrecedenceEquals.
var EqualityOperators = []token.TokenType{token.EQ, token.NE}

// ComparisonOperators bind at spi.PrecedenceLessGreater.
var ComparisonOperators = []token.TokenType{token.LT, token.GT}

// AdditiveOperators bind at spi.PrecedenceSum.
var AdditiveOperators = []token.TokenType{token.PLUS, token.MINUS}

// MultiplicativeOperators bind at spi.PrecedenceProduct.
var MultiplicativeOperators = []token.TokenType{token.STAR, token.SLASH}
