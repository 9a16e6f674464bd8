package syntax

// NodeKind is the closed set of structural node shapes the parser produces.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	NodeCompilationUnit
	NodeNamespaceDecl
	NodeFileScopedNamespaceDecl
	NodeUsingDirective
	NodeAttributeList
	NodeClassDecl
	NodeStructDecl
	NodeInterfaceDecl
	NodeRecordDecl
	NodeEnumDecl
	NodeDelegateDecl
	NodeEnumMember
	NodeFieldDecl
	NodeEventFieldDecl
	NodePropertyDecl
	NodeIndexerDecl
	NodeEventDecl
	NodeMethodDecl
	NodeConstructorDecl
	NodeAccessorList
	NodeAccessorDecl
	NodeParameterList
	NodeTypeParameterList
	NodeTypeArgumentList
	NodeBaseList
	NodeArrowExpression
	NodeInitializer
	NodeBlock
	NodeStatement
	NodeSkippedTokens

	nodeKindCount
)

var nodeKindNames = [nodeKindCount]string{
	NodeInvalid:                 "Invalid",
	NodeCompilationUnit:         "CompilationUnit",
	NodeNamespaceDecl:           "NamespaceDecl",
	NodeFileScopedNamespaceDecl: "FileScopedNamespaceDecl",
	NodeUsingDirective:          "UsingDirective",
	NodeAttributeList:           "AttributeList",
	NodeClassDecl:               "ClassDecl",
	NodeStructDecl:              "StructDecl",
	NodeInterfaceDecl:           "InterfaceDecl",
	NodeRecordDecl:              "RecordDecl",
	NodeEnumDecl:                "EnumDecl",
	NodeDelegateDecl:            "DelegateDecl",
	NodeEnumMember:              "EnumMember",
	NodeFieldDecl:               "FieldDecl",
	NodeEventFieldDecl:          "EventFieldDecl",
	NodePropertyDecl:            "PropertyDecl",
	NodeIndexerDecl:             "IndexerDecl",
	NodeEventDecl:               "EventDecl",
	NodeMethodDecl:              "MethodDecl",
	NodeConstructorDecl:         "ConstructorDecl",
	NodeAccessorList:            "AccessorList",
	NodeAccessorDecl:            "AccessorDecl",
	NodeParameterList:           "ParameterList",
	NodeTypeParameterList:       "TypeParameterList",
	NodeTypeArgumentList:        "TypeArgumentList",
	NodeBaseList:                "BaseList",
	NodeArrowExpression:         "ArrowExpression",
	NodeInitializer:             "Initializer",
	NodeBlock:                   "Block",
	NodeStatement:               "Statement",
	NodeSkippedTokens:           "SkippedTokens",
}

func (k NodeKind) String() string {
	if k < nodeKindCount {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// KindSet is a static membership table over NodeKind.
type KindSet [nodeKindCount]bool

func newKindSet(kinds ...NodeKind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

// Has reports whether k belongs to the set.
func (s *KindSet) Has(k NodeKind) bool {
	return k < nodeKindCount && s[k]
}

var (
	// NamespaceLike groups declarations at namespace scope.
	NamespaceLike = newKindSet(
		NodeCompilationUnit,
		NodeNamespaceDecl,
		NodeFileScopedNamespaceDecl,
	)

	// TopLevel are the declarations namespace-scope spacing is computed for.
	TopLevel = newKindSet(
		NodeCompilationUnit,
		NodeNamespaceDecl,
		NodeFileScopedNamespaceDecl,
		NodeUsingDirective,
		NodeAttributeList,
		NodeFieldDecl,
		NodePropertyDecl,
		NodeMethodDecl,
	)

	// GlobalMember are members that may appear directly in a namespace.
	GlobalMember = newKindSet(
		NodeMethodDecl,
		NodePropertyDecl,
		NodeFieldDecl,
	)

	// Member are all member declarations, type declarations included.
	Member = newKindSet(
		NodeNamespaceDecl,
		NodeFileScopedNamespaceDecl,
		NodeClassDecl,
		NodeStructDecl,
		NodeInterfaceDecl,
		NodeRecordDecl,
		NodeEnumDecl,
		NodeDelegateDecl,
		NodeFieldDecl,
		NodeEventFieldDecl,
		NodePropertyDecl,
		NodeIndexerDecl,
		NodeEventDecl,
		NodeMethodDecl,
		NodeConstructorDecl,
	)

	// PropertyLike are declarations that own an accessor list.
	PropertyLike = newKindSet(
		NodePropertyDecl,
		NodeIndexerDecl,
		NodeEventDecl,
	)

	// TypeDecl are declarations that open a type body.
	TypeDecl = newKindSet(
		NodeClassDecl,
		NodeStructDecl,
		NodeInterfaceDecl,
		NodeRecordDecl,
		NodeEnumDecl,
	)
)
