package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic kind.
// Ranges: 1000-1999 lexical, 2000-2999 syntax, 3000-3999 tooling.
type Code uint16

const (
	// UnknownCode — на случай, когда код не проставлен.
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedIndString    Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexUnterminatedInterpol     Code = 1005
	// 1006 отставлен, номер не переиспользуем
	LexBadPath                  Code = 1007
	LexModeUnderflow            Code = 1008

	// Синтаксические
	SynUnexpectedToken    Code = 2001
	SynExpectExpression   Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectAttrName     Code = 2004
	SynExpectSemicolon    Code = 2005
	SynExpectAssign       Code = 2006
	SynExpectColon        Code = 2007
	SynExpectThen         Code = 2008
	SynExpectElse         Code = 2009
	SynExpectIn           Code = 2010
	SynUnclosedParen      Code = 2011
	SynUnclosedBrace      Code = 2012
	SynUnclosedBracket    Code = 2013
	SynUnclosedInterpol   Code = 2014
	// 2015 отставлен, номер не переиспользуем
	SynNonAssocChain      Code = 2016
	SynBadPatternField    Code = 2017
	SynDuplicateEllipsis  Code = 2018
	SynDuplicatePatBind   Code = 2019
	SynExpectBinding      Code = 2020
	SynExpectPatternField Code = 2021
	SynEmptyLetBody       Code = 2022
	SynDuplicateBinding   Code = 2023
	SynDuplicateParam     Code = 2024

	// Инструментальные (I/O, кэш, тайминги)
	IOLoadFileError Code = 3001
	ObsTimings      Code = 3002
)

var codeNames = map[Code]string{
	UnknownCode:                 "UnknownCode",
	LexUnknownChar:              "LexUnknownChar",
	LexUnterminatedString:       "LexUnterminatedString",
	LexUnterminatedIndString:    "LexUnterminatedIndString",
	LexUnterminatedBlockComment: "LexUnterminatedBlockComment",
	LexUnterminatedInterpol:     "LexUnterminatedInterpol",
	LexBadPath:                  "LexBadPath",
	LexModeUnderflow:            "LexModeUnderflow",
	SynUnexpectedToken:          "SynUnexpectedToken",
	SynExpectExpression:         "SynExpectExpression",
	SynExpectIdentifier:         "SynExpectIdentifier",
	SynExpectAttrName:           "SynExpectAttrName",
	SynExpectSemicolon:          "SynExpectSemicolon",
	SynExpectAssign:             "SynExpectAssign",
	SynExpectColon:              "SynExpectColon",
	SynExpectThen:               "SynExpectThen",
	SynExpectElse:               "SynExpectElse",
	SynExpectIn:                 "SynExpectIn",
	SynUnclosedParen:            "SynUnclosedParen",
	SynUnclosedBrace:            "SynUnclosedBrace",
	SynUnclosedBracket:          "SynUnclosedBracket",
	SynUnclosedInterpol:         "SynUnclosedInterpol",
	SynNonAssocChain:            "SynNonAssocChain",
	SynBadPatternField:          "SynBadPatternField",
	SynDuplicateEllipsis:        "SynDuplicateEllipsis",
	SynDuplicatePatBind:         "SynDuplicatePatBind",
	SynExpectBinding:            "SynExpectBinding",
	SynExpectPatternField:       "SynExpectPatternField",
	SynEmptyLetBody:             "SynEmptyLetBody",
	SynDuplicateBinding:         "SynDuplicateBinding",
	SynDuplicateParam:           "SynDuplicateParam",
	IOLoadFileError:             "IOLoadFileError",
	ObsTimings:                  "ObsTimings",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// IsLexical reports whether c belongs to the lexical range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether c belongs to the syntax range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }

// IsTooling reports whether c belongs to the tooling range (I/O, cache, timings).
func (c Code) IsTooling() bool { return c >= 3000 && c < 4000 }
