// Package maputil 맵(Map) 데이터 처리 및 구조체 변환을 위한 유틸리티 기능을 제공합니다.
package maputil

import (
	"errors"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Decode 입력된 맵(Map)이나 인터페이스 데이터를 지정된 제네릭 타입 T의 구조체로 변환하여 반환합니다.
//
// 내부적으로 `mapstructure` 라이브러리를 활용하며, 안전하고 유연한 디코딩을 위한 기본 설정이 적용되어 있습니다.
//
// [주요 특징 및 기본 동작]
//   - 유연한 타입 변환 (Weakly Typed): "123" -> 123 (int), 1 -> true (bool) 등 타입을 자동으로 보정합니다.
//   - 태그 지원: 기본적으로 구조체의 `json` 태그를 기준으로 필드를 매핑합니다.
//   - 문자열 정리: 입력된 문자열 값의 앞뒤 공백을 자동으로 제거합니다.
//
// [주의사항]
// 기본적으로 `ErrorUnused` 옵션이 꺼져 있습니다.
// 따라서 구조체에 정의되지 않은 필드가 입력 데이터에 포함되어 있어도 에러 없이 무시됩니다.
//
// [사용 예시]
//
//	opts, err := maputil.Decode[MessageOptions](callData)
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo 입력된 데이터를 대상 구조체 포인터(output)에 디코딩하여 값을 채웁니다.
//
// [제약 사항]
// output 인자는 반드시 `nil`이 아닌 포인터여야 합니다. (Run-time Panic 방지)
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	// 1. 기본 설정값으로 초기화합니다.
	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
		errorUnused:      false,
		trimSpace:        true,
	}

	// 2. 사용자 정의 옵션 적용
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	// 3. mapstructure.DecoderConfig 생성
	msConfig := &mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		DecodeHook:       cfg.buildDecodeHook(),
	}

	decoder, err := mapstructure.NewDecoder(msConfig)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// decodingConfig 디코딩 동작 방식을 제어하는 내부 설정 구조체입니다.
type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	trimSpace        bool
}

// buildDecodeHook 설정에 따라 디코딩 훅 체인을 조립합니다.
func (cfg *decodingConfig) buildDecodeHook() mapstructure.DecodeHookFunc {
	var hooks []mapstructure.DecodeHookFunc

	if cfg.trimSpace {
		hooks = append(hooks, trimStringHook())
	}

	if len(hooks) == 0 {
		return nil
	}
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// trimStringHook 문자열 값의 앞뒤 공백을 제거하는 디코딩 훅을 반환합니다.
func trimStringHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() == reflect.String && to.Kind() == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

// Option 디코딩 동작 방식을 제어하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithTagName 필드 매핑에 사용할 구조체 태그 이름을 지정합니다. (기본값: "json")
func WithTagName(tagName string) Option {
	return func(cfg *decodingConfig) {
		cfg.tagName = tagName
	}
}

// WithErrorUnused 구조체에 정의되지 않은 필드가 입력 데이터에 존재할 경우 에러를 발생시킬지 여부를 설정합니다.
func WithErrorUnused(errorUnused bool) Option {
	return func(cfg *decodingConfig) {
		cfg.errorUnused = errorUnused
	}
}

// WithTrimSpace 문자열 값의 앞뒤 공백을 자동으로 제거할지 여부를 설정합니다. (기본값: true)
func WithTrimSpace(trimSpace bool) Option {
	return func(cfg *decodingConfig) {
		cfg.trimSpace = trimSpace
	}
}
