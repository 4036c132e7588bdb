package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"text/tabwriter"
	"time"
)

// 性能分析管理器
type ProfileManager struct {
	dir          string // 导出目录
	profileIndex int    // 文件索引
}

// NewProfileManager 构造函数
// @param dir 内存分析文件的导出目录 为空时使用当前目录
func NewProfileManager(dir string) *ProfileManager {
	if dir == "" {
		dir = "."
	}
	return &ProfileManager{dir: dir}
}

// WriteHeapProfile 强制 GC 后导出一次堆内存分析文件
// @return 导出的文件路径
func (p *ProfileManager) WriteHeapProfile() (string, error) {
	runtime.GC()

	p.profileIndex++
	filename := filepath.Join(p.dir, fmt.Sprintf("memory.profile.%s.%d", time.Now().Format("2006-01-02"), p.profileIndex))
	memoryFile, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return "", err
	}
	defer memoryFile.Close()

	if err := pprof.WriteHeapProfile(memoryFile); err != nil {
		return "", fmt.Errorf("generate memory analysis profile failed: %w", err)
	}
	slog.Info("[ProfileManager] heap profile written", slog.String("file", filename))
	return filename, nil
}

// MemoryStats 获取内存状态表格
func (p *ProfileManager) MemoryStats() string {
	var (
		memStats      runtime.MemStats
		memTabBuilder strings.Builder
	)

	runtime.ReadMemStats(&memStats)

	// 使用 tabWriter 对齐列
	tabWriter := tabwriter.NewWriter(&memTabBuilder, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tabWriter, "字段名\t字段值\t说明\n")
	fmt.Fprintf(tabWriter, "Alloc\t %d \t当前正在使用的堆内存字节数(≈ HeapAlloc)\n", memStats.Alloc)
	fmt.Fprintf(tabWriter, "TotalAlloc\t %d \t程序运行以来累计分配的堆内存总量\n", memStats.TotalAlloc)
	fmt.Fprintf(tabWriter, "Mallocs\t %d \t累计分配的堆对象数\n", memStats.Mallocs)
	fmt.Fprintf(tabWriter, "Frees\t %d \t累计释放的堆对象数\n", memStats.Frees)
	fmt.Fprintf(tabWriter, "HeapAlloc\t %d \t堆上已分配、仍存活的对象字节数\n", memStats.HeapAlloc)
	fmt.Fprintf(tabWriter, "HeapObjects\t %d \t当前存活的堆对象数\n", memStats.HeapObjects)
	fmt.Fprintf(tabWriter, "NumGC\t %d \t完成的垃圾回收次数\n", memStats.NumGC)

	tabWriter.Flush()
	return memTabBuilder.String()
}
