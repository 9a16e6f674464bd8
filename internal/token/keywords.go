package token

var keywords = map[string]Kind{
	"namespace": KwNamespace,
	"using":     KwUsing,
	"static":    KwStatic,
	"class":     KwClass,
	"struct":    KwStruct,
	"interface": KwInterface,
	"enum":      KwEnum,
	"delegate":  KwDelegate,
	"event":     KwEvent,
	"public":    KwPublic,
	"private":   KwPrivate,
	"protected": KwProtected,
	"internal":  KwInternal,
	"abstract":  KwAbstract,
	"sealed":    KwSealed,
	"virtual":   KwVirtual,
	"override":  KwOverride,
	"readonly":  KwReadonly,
	"const":     KwConst,
	"extern":    KwExtern,
	"unsafe":    KwUnsafe,
	"volatile":  KwVolatile,
	"new":       KwNew,
	"operator":  KwOperator,
	"implicit":  KwImplicit,
	"explicit":  KwExplicit,
	"this":      KwThis,
	"base":      KwBase,
	"return":    KwReturn,
	"if":        KwIf,
	"else":      KwElse,
	"for":       KwFor,
	"foreach":   KwForeach,
	"while":     KwWhile,
	"do":        KwDo,
	"switch":    KwSwitch,
	"case":      KwCase,
	"default":   KwDefault,
	"break":     KwBreak,
	"continue":  KwContinue,
	"try":       KwTry,
	"catch":     KwCatch,
	"finally":   KwFinally,
	"throw":     KwThrow,
	"null":      KwNull,
	"true":      KwTrue,
	"false":     KwFalse,
	"in":        KwIn,
	"out":       KwOut,
	"ref":       KwRef,
	"params":    KwParams,
	"is":        KwIs,
	"as":        KwAs,
}

var contextual = map[string]Kind{
	"get":     KwGet,
	"set":     KwSet,
	"init":    KwInit,
	"add":     KwAdd,
	"remove":  KwRemove,
	"record":  KwRecord,
	"partial": KwPartial,
	"async":   KwAsync,
	"where":   KwWhere,
	"global":  KwGlobal,
}

// LookupKeyword возвращает тип и bool если это зарезервированное ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupContextual reports the contextual keyword spelled by ident, if any.
func LookupContextual(ident string) (Kind, bool) {
	k, ok := contextual[ident]
	return k, ok
}
