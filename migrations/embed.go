// Package migrations 内嵌数据库迁移脚本，供 golang-migrate 通过 iofs 读取。
package migrations

import "embed"

// FS 包含所有 *.sql 迁移文件。
//
//go:embed *.sql
var FS embed.FS
