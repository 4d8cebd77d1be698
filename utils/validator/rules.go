package validator

import (
	"regexp"

	vd "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/grahamannett/identicon-take-home/utils/identicon"
)

// LabelRule identiconラベルバリデーションルール
// 英数字と空白のみ、LabelMaxLength文字以下
var LabelRule = []vd.Rule{
	vd.Match(regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)).Error("must contain [a-zA-Z0-9 ] only"),
	vd.RuneLength(0, identicon.LabelMaxLength),
}

// LabelRuleRequired identiconラベルバリデーションルール with Required
var LabelRuleRequired = append([]vd.Rule{
	vd.Required,
}, LabelRule...)

// NumColorsRule パレット色数バリデーションルール
var NumColorsRule = []vd.Rule{
	vd.Min(identicon.MinColors),
}

// ImageSizeRule 画像サイズバリデーションルール
var ImageSizeRule = []vd.Rule{
	vd.Required,
	vd.Min(1),
}
