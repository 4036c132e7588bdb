package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
)

// TaskResult 单个任务的结果
type TaskResult struct {
	TaskID        int  `json:"task_id"`
	Size          int  `json:"size"`
	Capacity      int  `json:"capacity"`
	Growths       int  `json:"growths"`
	Failures      int  `json:"failures"`
	Injected      int  `json:"injected"`
	Constructions int  `json:"constructions"`
	Destructions  int  `json:"destructions"`
	Cancelled     bool `json:"cancelled"`
}

// Report 压测报告
type Report struct {
	RunID         string        `json:"run_id"`
	Workers       int           `json:"workers"`
	Duration      time.Duration `json:"duration"`
	Constructions int           `json:"constructions"`
	Destructions  int           `json:"destructions"`
	Failures      int           `json:"failures"`
	Injected      int           `json:"injected"`
	Balanced      bool          `json:"balanced"`
	Results       []TaskResult  `json:"results"`
}

// summarize 汇总任务结果
func (r *Report) summarize() {
	r.Constructions, r.Destructions, r.Failures, r.Injected = 0, 0, 0, 0
	for _, result := range r.Results {
		r.Constructions += result.Constructions
		r.Destructions += result.Destructions
		r.Failures += result.Failures
		r.Injected += result.Injected
	}
	r.Balanced = r.Constructions == r.Destructions
}

// WriteJSON 以 JSON 输出报告
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteText 以表格输出报告
func (r *Report) WriteText(w io.Writer) error {
	tabWriter := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tabWriter, "运行ID: %s\t耗时: %s\t并发: %d\n", r.RunID, r.Duration, r.Workers)
	fmt.Fprintf(tabWriter, "任务\t元素数\t容量\t扩容次数\t失败次数\t注入失败\t构造\t析构\n")
	for _, result := range r.Results {
		fmt.Fprintf(tabWriter, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n", result.TaskID, result.Size, result.Capacity, result.Growths,
			result.Failures, result.Injected, result.Constructions, result.Destructions)
	}
	fmt.Fprintf(tabWriter, "合计\t\t\t\t%d\t%d\t%d\t%d\n", r.Failures, r.Injected, r.Constructions, r.Destructions)
	fmt.Fprintf(tabWriter, "构造析构平衡: %t\n", r.Balanced)
	return tabWriter.Flush()
}

// Write 按格式输出报告
func (r *Report) Write(w io.Writer, format string) error {
	if format == FormatJSON {
		return r.WriteJSON(w)
	}
	return r.WriteText(w)
}
