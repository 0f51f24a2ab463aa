package wrappers

import "github.com/ygrebnov/lightup"

// Describe reports the support of every wrapper shape by the loaded syntax version.
func Describe() []lightup.ShapeInfo {
	return []lightup.ShapeInfo{
		DescribeRefExpression(),
		DescribeThrowExpression(),
		DescribeRangeExpression(),
	}
}
