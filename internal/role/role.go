// Package role 提供活动内角色的枚举与纯函数权限判断
package role

import "strings"

const (
	Admin       = "admin"
	Core        = "core"
	Participant = "participant"
)

// Valid 判断角色是否属于固定的三值枚举（不区分大小写）
func Valid(r string) bool {
	switch strings.ToLower(r) {
	case Admin, Core, Participant:
		return true
	}
	return false
}

// Normalize 统一为小写入库形式
func Normalize(r string) string {
	return strings.ToLower(strings.TrimSpace(r))
}

// Has 判断用户角色是否在允许集合内，不区分大小写，无状态无 IO
func Has(userRole string, allowed ...string) bool {
	r := strings.ToLower(userRole)
	for _, a := range allowed {
		if r == strings.ToLower(a) {
			return true
		}
	}
	return false
}
