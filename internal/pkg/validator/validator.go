// Package validator 애플리케이션 전역에서 공유하는 구조체 유효성 검증기를 제공합니다.
//
// go-playground/validator 인스턴스를 싱글톤으로 관리하며, 검증 실패 시
// `korean` 태그를 기반으로 사용자 친화적인 한글 에러 메시지를 생성합니다.
//
// [사용 예시]
//
//	type Request struct {
//	    Name string `validate:"required" korean:"이름"`
//	}
//
//	if err := validator.Struct(req); err != nil {
//	    msg := validator.FormatValidationError(err) // "이름는 필수입니다"
//	}
package validator

import (
	"fmt"
	"reflect"
	"sync"

	go_validator "github.com/go-playground/validator/v10"
)

var (
	// instance 전역 validator 인스턴스입니다.
	instance *go_validator.Validate

	// once validator 초기화가 정확히 한 번만 실행되도록 보장합니다.
	once sync.Once
)

// Get 초기화된 전역 validator 인스턴스를 반환합니다.
//
// sync.Once를 사용하여 초기화가 정확히 한 번만 실행되도록 보장하며,
// 동시에 호출되어도 항상 동일한 인스턴스를 반환합니다.
func Get() *go_validator.Validate {
	once.Do(func() {
		instance = go_validator.New()

		// korean 태그를 필드명으로 사용하도록 설정합니다.
		// validator가 에러 메시지를 생성할 때 korean 태그 값을 필드명으로 사용하며,
		// 태그가 없는 필드는 Go 필드명을 그대로 사용합니다.
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if koreanName := fld.Tag.Get("korean"); koreanName != "" {
				return koreanName
			}
			return fld.Name
		})
	})

	return instance
}

// Struct 구조체의 validate 태그를 기반으로 유효성 검증을 수행합니다.
func Struct(s interface{}) error {
	return Get().Struct(s)
}

// FormatValidationError validator 에러를 사용자 친화적인 한글 메시지로 변환합니다.
//
// 여러 검증 에러가 있을 경우 첫 번째 에러만 변환하여 반환하며,
// validator 에러가 아닌 경우에는 원본 에러 메시지를 그대로 반환합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(go_validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	if len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

// formatFieldError 개별 필드 에러를 검증 태그별 한글 메시지로 변환합니다.
//
// min/max/len/lte/gte 태그는 필드 타입에 따라 메시지가 달라집니다.
// 문자열은 글자 수("~자"), 슬라이스는 갯수("~개"), 숫자는 값 자체를 기준으로 표현합니다.
func formatFieldError(fieldErr go_validator.FieldError) string {
	fieldName := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", fieldName)
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", fieldName, fieldErr.Param())
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", fieldName, fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", fieldName, fieldErr.Param())
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", fieldName, fieldErr.Param())
	case "len":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s는 %s자여야 합니다", fieldName, fieldErr.Param())
		}
		return fmt.Sprintf("%s는 갯수가 %s개여야 합니다", fieldName, fieldErr.Param())
	case "lte":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", fieldName, fieldErr.Param())
		}
		return fmt.Sprintf("%s는 %s 이하이어야 합니다", fieldName, fieldErr.Param())
	case "gte":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", fieldName, fieldErr.Param())
		}
		return fmt.Sprintf("%s는 %s 이상이어야 합니다", fieldName, fieldErr.Param())
	case "email":
		return fmt.Sprintf("%s는 올바른 이메일 형식이어야 합니다", fieldName)
	case "url":
		return fmt.Sprintf("%s는 올바른 URL 형식이어야 합니다", fieldName)
	case "uuid":
		return fmt.Sprintf("%s는 올바른 UUID 형식이어야 합니다", fieldName)
	case "alphanum":
		return fmt.Sprintf("%s는 영문자와 숫자만 입력 가능합니다", fieldName)
	case "oneof":
		return fmt.Sprintf("%s는 허용된 값 중 하나여야 합니다 [%s]", fieldName, fieldErr.Param())
	case "boolean":
		return fmt.Sprintf("%s는 true 또는 false 값이어야 합니다", fieldName)
	default:
		return fmt.Sprintf("%s 값 검증 실패 (%s)", fieldName, fieldErr.Tag())
	}
}
