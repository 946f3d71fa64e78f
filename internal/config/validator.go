package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/wework-notify/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// newValidator JSON 태그 이름을 필드명으로 사용하는 Validator 객체를 생성하여 반환합니다.
// 유효성 검증 오류 메시지에 Go 필드명 대신 설정 파일상의 키 이름이 노출되도록 합니다.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// checkStruct 구조체의 validate 태그 기반 유효성 검증을 수행합니다.
func checkStruct(validate *validator.Validate, s any, desc string) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if apperrors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fieldError := validationErrors[0]
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 '%s' 설정값이 유효하지 않습니다(%s)", desc, fieldError.Namespace(), fieldError.Tag()))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s의 유효성 검증에 실패했습니다", desc))
	}
	return nil
}

// checkUniqueField 슬라이스 항목들의 특정 필드값이 서로 중복되지 않는지 검증합니다.
func checkUniqueField[T any](items []T, keyFunc func(T) string, desc string) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := keyFunc(item)
		if _, exists := seen[key]; exists {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s('%s')이(가) 중복 정의되었습니다", desc, key))
		}
		seen[key] = struct{}{}
	}
	return nil
}
