package boj

import (
	"fmt"
	"strconv"
	"strings"
)

// Language is the judge's numeric code for a programming language.
type Language uint32

const (
	C99        Language = 0
	Go         Language = 12
	NodeJs     Language = 17
	Python3    Language = 28
	D          Language = 29
	Text       Language = 58
	Ruby       Language = 68
	KotlinJvm  Language = 69
	PyPy3      Language = 73
	Swift      Language = 74
	Cpp17      Language = 84
	Cpp17Clang Language = 85
	Cs90DotNet Language = 86
	Java11     Language = 93
	Rust2018   Language = 94
)

type languageInfo struct {
	name    string
	display string
}

var languages = map[Language]languageInfo{
	Cpp17:      {"Cpp17", "C++17"},
	Python3:    {"Python3", "Python 3"},
	PyPy3:      {"PyPy3", "PyPy3"},
	C99:        {"C99", "C99"},
	Java11:     {"Java11", "Java 11"},
	Ruby:       {"Ruby", "Ruby"},
	KotlinJvm:  {"KotlinJvm", "Kotlin (JVM)"},
	Swift:      {"Swift", "Swift"},
	Text:       {"Text", "Text"},
	Cs90DotNet: {"Cs90DotNet", "C# 9.0 (.NET)"},
	NodeJs:     {"NodeJs", "node.js"},
	Go:         {"Go", "Go"},
	D:          {"D", "D"},
	Rust2018:   {"Rust2018", "Rust 2018"},
	Cpp17Clang: {"Cpp17Clang", "C++17 (Clang)"},
}

// Languages lists every supported language ordered by code.
func Languages() []Language {
	return []Language{C99, Go, NodeJs, Python3, D, Text, Ruby, KotlinJvm, PyPy3, Swift, Cpp17, Cpp17Clang, Cs90DotNet, Java11, Rust2018}
}

// ParseLanguage resolves a canonical name ("Cpp17") or the judge's display
// name ("C++17"), ignoring case. Unknown names are an error, never a default.
func ParseLanguage(name string) (Language, error) {
	needle := strings.TrimSpace(name)
	for code, info := range languages {
		if strings.EqualFold(info.name, needle) || strings.EqualFold(info.display, needle) {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
}

func (l Language) Code() uint32 { return uint32(l) }

func (l Language) Name() string {
	if info, ok := languages[l]; ok {
		return info.name
	}
	return "Language(" + strconv.FormatUint(uint64(l), 10) + ")"
}

func (l Language) DisplayName() string {
	if info, ok := languages[l]; ok {
		return info.display
	}
	return l.Name()
}

func (l Language) String() string { return l.Name() }

func (l Language) Valid() bool {
	_, ok := languages[l]
	return ok
}
