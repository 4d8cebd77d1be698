package validator

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateLabel ラベルがLabelRuleを満たすか検証します
//
// 生成自体はどんな文字列でも可能なので、呼び出し側は結果を警告として扱えます
func ValidateLabel(label string) error {
	return vd.Validate(label, LabelRule...)
}
