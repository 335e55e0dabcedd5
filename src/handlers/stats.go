/*
 * YtFetch - Telegram YouTube Downloader Bot
 *  Copyright (c) 2026 Rohit Meena
 *
 *  Licensed under GNU GPL v3
 */

package handlers

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/amarnathcjd/gogram/telegram"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
)

func humanBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// statsHandler handles the /stats command with runtime and host metrics.
func statsHandler(msg *telegram.NewMessage) error {
	sysMsg, err := msg.Reply("📊 Collecting system statistics...")
	if err != nil {
		return err
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 <b>%s — Runtime Status</b>\n\n", msg.Client.Me().FirstName))

	sb.WriteString("🤖 <b>Application</b>\n")
	sb.WriteString(fmt.Sprintf(
		"• Uptime: %s\n• Goroutines: %d\n• Go Version: %s\n• Heap: %s\n\n",
		time.Since(startTime).Round(time.Second),
		runtime.NumGoroutine(),
		runtime.Version(),
		humanBytes(ms.HeapAlloc),
	))

	sb.WriteString("🖥 <b>Host</b>\n")
	if pct, err := cpu.Percent(time.Second, false); err == nil && len(pct) > 0 {
		sb.WriteString(fmt.Sprintf("• CPU: %.1f%%\n", pct[0]))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		sb.WriteString(fmt.Sprintf("• RAM: %s / %s (%.1f%%)\n",
			humanBytes(vm.Used), humanBytes(vm.Total), vm.UsedPercent))
	}
	if du, err := disk.Usage("/"); err == nil {
		sb.WriteString(fmt.Sprintf("• Disk: %s / %s (%.1f%%)\n",
			humanBytes(du.Used), humanBytes(du.Total), du.UsedPercent))
	}

	_, _ = sysMsg.Edit(sb.String())
	return nil
}
