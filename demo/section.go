package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"flist/config"
	"flist/lib/wildcard"
	"flist/logger"
)

// ErrNoSection 没有任何小节匹配给定的模式
var ErrNoSection = errors.New("demo: no section matches")

// RunFunc 把一个小节的演示输出写到w
type RunFunc func(w io.Writer)

type section struct {
	name  string
	title string
	run   RunFunc
}

// sectionTable 按注册顺序保存所有小节，sectionIndex 用于按名字查找
var (
	sectionTable []*section
	sectionIndex = make(map[string]*section)
)

// register 注册一个小节，名字不能重复
func register(name string, title string, run RunFunc) {
	name = strings.ToLower(name)
	if _, ok := sectionIndex[name]; ok {
		panic("demo: duplicate section " + name)
	}
	s := &section{
		name:  name,
		title: title,
		run:   run,
	}
	sectionIndex[name] = s
	sectionTable = append(sectionTable, s)
}

// Names 返回所有小节的名字，顺序与运行顺序一致
func Names() []string {
	names := make([]string, 0, len(sectionTable))
	for _, s := range sectionTable {
		names = append(names, s.name)
	}
	return names
}

// Runner 依次运行名字匹配的小节，把结果写到out
type Runner struct {
	out  io.Writer
	conf *config.DemoConfig
}

func NewRunner(out io.Writer, conf *config.DemoConfig) *Runner {
	if conf == nil {
		conf = config.Default()
	}
	return &Runner{out: out, conf: conf}
}

// Run 运行名字匹配patterns中任意一个的小节，patterns为空时使用配置中的Sections
// 返回运行的小节个数
func (r *Runner) Run(patterns ...string) (int, error) {
	if len(patterns) == 0 {
		patterns = r.conf.Sections
	}
	set, err := wildcard.CompileSet(patterns...)
	if err != nil {
		return 0, fmt.Errorf("demo: bad section pattern: %w", err)
	}

	fmt.Fprintln(r.out, strings.Repeat(r.conf.Delimiter, r.conf.Width))
	dot := strings.Repeat(r.conf.Dot, r.conf.Width)
	ran := 0
	for _, s := range sectionTable {
		if !set.IsMatch(s.name) {
			continue
		}
		fmt.Fprintln(r.out, dot)
		fmt.Fprintf(r.out, "ForwardList - %s\n", s.title)
		s.run(r.out)
		fmt.Fprintln(r.out)
		logger.Debugf("section %s finished", s.name)
		ran++
	}
	if ran == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoSection, strings.Join(patterns, ", "))
	}
	logger.Infof("%d sections finished", ran)
	return ran, nil
}
