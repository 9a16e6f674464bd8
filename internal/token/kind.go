package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	KwNamespace // namespace
	KwUsing     // using
	KwStatic    // static
	KwClass     // class
	KwStruct    // struct
	KwInterface // interface
	KwEnum      // enum
	KwDelegate  // delegate
	KwEvent     // event
	KwPublic    // public
	KwPrivate   // private
	KwProtected // protected
	KwInternal  // internal
	KwAbstract  // abstract
	KwSealed    // sealed
	KwVirtual   // virtual
	KwOverride  // override
	KwReadonly  // readonly
	KwConst     // const
	KwExtern    // extern
	KwUnsafe    // unsafe
	KwVolatile  // volatile
	KwNew       // new
	KwOperator  // operator
	KwImplicit  // implicit
	KwExplicit  // explicit
	KwThis      // this
	KwBase      // base
	KwReturn    // return
	KwIf        // if
	KwElse      // else
	KwFor       // for
	KwForeach   // foreach
	KwWhile     // while
	KwDo        // do
	KwSwitch    // switch
	KwCase      // case
	KwDefault   // default
	KwBreak     // break
	KwContinue  // continue
	KwTry       // try
	KwCatch     // catch
	KwFinally   // finally
	KwThrow     // throw
	KwNull      // null
	KwTrue      // true
	KwFalse     // false
	KwIn        // in
	KwOut       // out
	KwRef       // ref
	KwParams    // params
	KwIs        // is
	KwAs        // as

	// contextual keywords, produced by the parser only
	KwGet     // get
	KwSet     // set
	KwInit    // init
	KwAdd     // add
	KwRemove  // remove
	KwRecord  // record
	KwPartial // partial
	KwAsync   // async
	KwWhere   // where
	KwGlobal  // global

	// IntLit represents an integer literal token.
	IntLit
	// RealLit represents a floating point literal token.
	RealLit
	// StringLit represents a regular or verbatim string literal token.
	StringLit
	// InterpolatedStringLit represents a $"..." literal token.
	InterpolatedStringLit
	// CharLit represents a character literal token.
	CharLit

	Plus             // +
	Minus            // -
	Star             // *
	Slash            // /
	Percent          // %
	Assign           // =
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	PercentAssign    // %=
	AmpAssign        // &=
	PipeAssign       // |=
	CaretAssign      // ^=
	ShlAssign        // <<=
	EqEq             // ==
	Bang             // !
	BangEq           // !=
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Shl              // <<
	Amp              // &
	Pipe             // |
	Caret            // ^
	Tilde            // ~
	AndAnd           // &&
	OrOr             // ||
	PlusPlus         // ++
	MinusMinus       // --
	Question         // ?
	QuestionQuestion // ??
	Colon            // :
	ColonColon       // ::
	Semicolon        // ;
	Comma            // ,
	Dot              // .
	Arrow            // ->
	FatArrow         // =>
	LParen           // (
	RParen           // )
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	// LAngle and RAngle are '<' and '>' re-tagged by the parser as
	// type parameter or type argument delimiters.
	LAngle // <
	RAngle // >

	kindCount
)

var kindNames = [kindCount]string{
	Invalid: "Invalid", EOF: "EOF", Ident: "Ident",

	KwNamespace: "namespace", KwUsing: "using", KwStatic: "static", KwClass: "class",
	KwStruct: "struct", KwInterface: "interface", KwEnum: "enum", KwDelegate: "delegate",
	KwEvent: "event", KwPublic: "public", KwPrivate: "private", KwProtected: "protected",
	KwInternal: "internal", KwAbstract: "abstract", KwSealed: "sealed", KwVirtual: "virtual",
	KwOverride: "override", KwReadonly: "readonly", KwConst: "const", KwExtern: "extern",
	KwUnsafe: "unsafe", KwVolatile: "volatile", KwNew: "new", KwOperator: "operator",
	KwImplicit: "implicit", KwExplicit: "explicit", KwThis: "this", KwBase: "base",
	KwReturn: "return", KwIf: "if", KwElse: "else", KwFor: "for", KwForeach: "foreach",
	KwWhile: "while", KwDo: "do", KwSwitch: "switch", KwCase: "case", KwDefault: "default",
	KwBreak: "break", KwContinue: "continue", KwTry: "try", KwCatch: "catch",
	KwFinally: "finally", KwThrow: "throw", KwNull: "null", KwTrue: "true", KwFalse: "false",
	KwIn: "in", KwOut: "out", KwRef: "ref", KwParams: "params", KwIs: "is", KwAs: "as",

	KwGet: "get", KwSet: "set", KwInit: "init", KwAdd: "add", KwRemove: "remove",
	KwRecord: "record", KwPartial: "partial", KwAsync: "async", KwWhere: "where",
	KwGlobal: "global",

	IntLit: "IntLit", RealLit: "RealLit", StringLit: "StringLit",
	InterpolatedStringLit: "InterpolatedStringLit", CharLit: "CharLit",

	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Assign: "=",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	PercentAssign: "%=", AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=",
	ShlAssign: "<<=", EqEq: "==", Bang: "!", BangEq: "!=", Lt: "<", LtEq: "<=",
	Gt: ">", GtEq: ">=", Shl: "<<", Amp: "&", Pipe: "|", Caret: "^", Tilde: "~",
	AndAnd: "&&", OrOr: "||", PlusPlus: "++", MinusMinus: "--", Question: "?",
	QuestionQuestion: "??", Colon: ":", ColonColon: "::", Semicolon: ";", Comma: ",",
	Dot: ".", Arrow: "->", FatArrow: "=>", LParen: "(", RParen: ")", LBrace: "{",
	RBrace: "}", LBracket: "[", RBracket: "]", LAngle: "<", RAngle: ">",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
