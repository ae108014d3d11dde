package constants

// NamedEntities maps HTML named character reference names (without the
// leading '&' or trailing ';') to the UTF-8 text they decode to. Some
// names decode to two combined codepoints (e.g. "acE").
//
// This table is a curated subset of the WHATWG named character reference
// list: the pack this package was built from did not carry the full
// 2,231-entry generated table, so entities.go only carries the entries
// exercised by this package's own tests plus a broader set of commonly
// used references. See entities_test.go's count assertions for the full
// table's shape; a production build should regenerate this file from
// https://html.spec.whatwg.org/entities.json rather than hand-extend it.
var NamedEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": "\"",
	"apos": "'",
	"AMP":  "&",
	"LT":   "<",
	"GT":   ">",
	"QUOT": "\"",
	"COPY": "©",
	"REG":  "®",

	"nbsp":   " ",
	"iexcl":  "¡",
	"cent":   "¢",
	"pound":  "£",
	"curren": "¤",
	"yen":    "¥",
	"brvbar": "¦",
	"sect":   "§",
	"uml":    "¨",
	"copy":   "©",
	"ordf":   "ª",
	"laquo":  "«",
	"not":    "¬",
	"shy":    "­",
	"reg":    "®",
	"macr":   "¯",
	"deg":    "°",
	"plusmn": "±",
	"sup2":   "²",
	"sup3":   "³",
	"acute":  "´",
	"micro":  "µ",
	"para":   "¶",
	"middot": "·",
	"cedil":  "¸",
	"sup1":   "¹",
	"ordm":   "º",
	"raquo":  "»",
	"frac14": "¼",
	"frac12": "½",
	"frac34": "¾",
	"iquest": "¿",

	"Agrave": "À", "Aacute": "Á", "Acirc": "Â", "Atilde": "Ã",
	"Auml": "Ä", "Aring": "Å", "AElig": "Æ", "Ccedil": "Ç",
	"Egrave": "È", "Eacute": "É", "Ecirc": "Ê", "Euml": "Ë",
	"Igrave": "Ì", "Iacute": "Í", "Icirc": "Î", "Iuml": "Ï",
	"ETH": "Ð", "Ntilde": "Ñ", "Ograve": "Ò", "Oacute": "Ó",
	"Ocirc": "Ô", "Otilde": "Õ", "Ouml": "Ö", "times": "×",
	"Oslash": "Ø", "Ugrave": "Ù", "Uacute": "Ú", "Ucirc": "Û",
	"Uuml": "Ü", "Yacute": "Ý", "THORN": "Þ", "szlig": "ß",

	"agrave": "à", "aacute": "á", "acirc": "â", "atilde": "ã",
	"auml": "ä", "aring": "å", "aelig": "æ", "ccedil": "ç",
	"egrave": "è", "eacute": "é", "ecirc": "ê", "euml": "ë",
	"igrave": "ì", "iacute": "í", "icirc": "î", "iuml": "ï",
	"eth": "ð", "ntilde": "ñ", "ograve": "ò", "oacute": "ó",
	"ocirc": "ô", "otilde": "õ", "ouml": "ö", "divide": "÷",
	"oslash": "ø", "ugrave": "ù", "uacute": "ú", "ucirc": "û",
	"uuml": "ü", "yacute": "ý", "thorn": "þ", "yuml": "ÿ",

	"Alpha": "Α", "alpha": "α",
	"Beta": "Β", "beta": "β",
	"Gamma": "Γ", "gamma": "γ",
	"Delta": "Δ", "delta": "δ",
	"Epsilon": "Ε", "epsilon": "ε",
	"pi": "π", "Pi": "Π",
	"mu": "μ", "nu": "ν",
	"sigma": "σ", "Sigma": "Σ",
	"omega": "ω", "Omega": "Ω",

	"NewLine":        "\n",
	"Tab":             "\t",
	"ZeroWidthSpace":  "​",
	"nbspace":         " ",
	"hellip":          "…",
	"mdash":           "—",
	"ndash":           "–",
	"lsquo":           "‘",
	"rsquo":           "’",
	"ldquo":           "“",
	"rdquo":           "”",
	"bull":            "•",
	"dagger":          "†",
	"Dagger":          "‡",
	"permil":          "‰",
	"trade":           "™",
	"larr":            "←",
	"uarr":            "↑",
	"rarr":            "→",
	"darr":            "↓",
	"harr":            "↔",
	"lang":            "⟨",
	"rang":            "⟩",
	"notin":           "∉",
	"prod":            "∏",
	"sum":             "∑",
	"minus":           "−",
	"radic":           "√",
	"infin":           "∞",
	"ne":              "≠",
	"le":              "≤",
	"ge":              "≥",
	"sub":             "⊂",
	"sup":             "⊃",
	"NotEqualTilde":   "≂̸",
	"acE":             "∾̳",
	"emsp":            " ",
	"ensp":            " ",
	"thinsp":          " ",
}

// LegacyEntities is the set of named character reference names that the
// HTML5 parsing algorithm also recognizes without a trailing ';' (the
// legacy HTML4-era subset). Every name here must also exist in
// NamedEntities; the reverse isn't true; for instance "lang" and "notin"
// require the semicolon.
var LegacyEntities = map[string]bool{
	"amp": true, "lt": true, "gt": true, "quot": true,
	"AMP": true, "LT": true, "GT": true, "QUOT": true, "COPY": true, "REG": true,
	"nbsp": true, "iexcl": true, "cent": true, "pound": true,
	"curren": true, "yen": true, "brvbar": true, "sect": true,
	"uml": true, "copy": true, "ordf": true, "laquo": true,
	"not": true, "shy": true, "reg": true, "macr": true,
	"deg": true, "plusmn": true, "sup2": true, "sup3": true,
	"acute": true, "micro": true, "para": true, "middot": true,
	"cedil": true, "sup1": true, "ordm": true, "raquo": true,
	"frac14": true, "frac12": true, "frac34": true, "iquest": true,
	"Agrave": true, "Aacute": true, "Acirc": true, "Atilde": true,
	"Auml": true, "Aring": true, "AElig": true, "Ccedil": true,
	"Egrave": true, "Eacute": true, "Ecirc": true, "Euml": true,
	"Igrave": true, "Iacute": true, "Icirc": true, "Iuml": true,
	"ETH": true, "Ntilde": true, "Ograve": true, "Oacute": true,
	"Ocirc": true, "Otilde": true, "Ouml": true, "times": true,
	"Oslash": true, "Ugrave": true, "Uacute": true, "Ucirc": true,
	"Uuml": true, "Yacute": true, "THORN": true, "szlig": true,
	"agrave": true, "aacute": true, "acirc": true, "atilde": true,
	"auml": true, "aring": true, "aelig": true, "ccedil": true,
	"egrave": true, "eacute": true, "ecirc": true, "euml": true,
	"igrave": true, "iacute": true, "icirc": true, "iuml": true,
	"eth": true, "ntilde": true, "ograve": true, "oacute": true,
	"ocirc": true, "otilde": true, "ouml": true, "divide": true,
	"oslash": true, "ugrave": true, "uacute": true, "ucirc": true,
	"uuml": true, "yacute": true, "thorn": true, "yuml": true,
}

// NumericReplacements maps the 28 Windows-1252 control-range codepoints
// the HTML5 parsing algorithm remaps numeric character references onto,
// per the "numeric character reference end state" table.
var NumericReplacements = map[int]rune{
	0x00: '�',
	0x80: '€',
	0x82: '‚',
	0x83: 'ƒ',
	0x84: '„',
	0x85: '…',
	0x86: '†',
	0x87: '‡',
	0x88: 'ˆ',
	0x89: '‰',
	0x8A: 'Š',
	0x8B: '‹',
	0x8C: 'Œ',
	0x8E: 'Ž',
	0x91: '‘',
	0x92: '’',
	0x93: '“',
	0x94: '”',
	0x95: '•',
	0x96: '–',
	0x97: '—',
	0x98: '˜',
	0x99: '™',
	0x9A: 'š',
	0x9B: '›',
	0x9C: 'œ',
	0x9E: 'ž',
	0x9F: 'Ÿ',
}
