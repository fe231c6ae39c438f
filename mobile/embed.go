//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，需要先把 data/ 复制到本目录。
package mobile

import "embed"

//go:embed data/field.yaml data/words.yaml data/strings
var dataFS embed.FS
