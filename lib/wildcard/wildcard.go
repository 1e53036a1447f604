package wildcard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTrailingEscape 模式以转义符 \ 结尾
var ErrTrailingEscape = errors.New("wildcard: pattern ends with escape character")

// Pattern 表示一个通配符模式，支持 * ? [...] [^...] 和 \ 转义
type Pattern struct {
	src string
	exp *regexp.Regexp
}

// 正则中有特殊含义、在通配符中没有特殊含义的字符需要转义
var replaceMap = map[byte]string{
	'+': `\+`,
	')': `\)`,
	'(': `\(`,
	'$': `\$`,
	'.': `\.`,
	'{': `\{`,
	'}': `\}`,
	'|': `\|`,
	'*': `.*`,
	'?': `.`,
}

// CompilePattern 把通配符转换成正则表达式
func CompilePattern(src string) (*Pattern, error) {
	var sb strings.Builder
	sb.WriteByte('^')
	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case ch == '\\':
			if i == len(src)-1 {
				return nil, ErrTrailingEscape
			}
			sb.WriteByte(ch)
			sb.WriteByte(src[i+1])
			i++
		case ch == '^':
			// 只有紧跟在未转义的 [ 之后才表示取反
			if i > 0 && src[i-1] == '[' && (i < 2 || src[i-2] != '\\') {
				sb.WriteByte('^')
			} else {
				sb.WriteString(`\^`)
			}
		default:
			if escaped, ok := replaceMap[ch]; ok {
				sb.WriteString(escaped)
			} else {
				sb.WriteByte(ch)
			}
		}
	}
	sb.WriteByte('$')
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("wildcard: compile %q: %w", src, err)
	}
	return &Pattern{src: src, exp: re}, nil
}

func (p *Pattern) IsMatch(s string) bool {
	return p.exp.MatchString(s)
}

func (p *Pattern) String() string {
	return p.src
}

// Set 一组模式，匹配其中任意一个即可
type Set []*Pattern

// CompileSet 编译所有模式，遇到第一个错误时返回
func CompileSet(patterns ...string) (Set, error) {
	set := make(Set, 0, len(patterns))
	for _, src := range patterns {
		p, err := CompilePattern(src)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

func (s Set) IsMatch(str string) bool {
	for _, p := range s {
		if p.IsMatch(str) {
			return true
		}
	}
	return false
}
