package wework

// RecipientSet 메시지의 수신 대상을 표현하는 값 객체입니다.
//
// app 채널은 사용자/부서/태그 ID 목록으로, bot 채널은 멘션 대상 목록으로 수신자를 지정합니다.
// 각 목록 내의 원소는 중복되지 않습니다.
type RecipientSet struct {
	// Users 수신 사용자 ID의 목록 (app 채널 전용)
	Users []string

	// Parties 수신 부서 ID의 목록 (app 채널 전용)
	Parties []string

	// Tags 수신 태그 ID의 목록 (app 채널 전용)
	Tags []string

	// MentionedUsers 멘션할 사용자 ID의 목록 (bot 채널 전용)
	MentionedUsers []string

	// MentionedMobiles 멘션할 휴대폰 번호의 목록 (bot 채널 전용)
	MentionedMobiles []string
}

// IsEmpty 모든 수신 대상 목록이 비어있는지 여부를 반환합니다.
func (r *RecipientSet) IsEmpty() bool {
	return len(r.Users) == 0 && len(r.Parties) == 0 && len(r.Tags) == 0 &&
		len(r.MentionedUsers) == 0 && len(r.MentionedMobiles) == 0
}

// HasAddressees app 채널의 주소 지정 필드(Users/Parties/Tags)에 수신자가
// 하나 이상 존재하는지 여부를 반환합니다.
// 멘션 필드(MentionedUsers/MentionedMobiles)는 bot 채널 전용이므로 포함하지 않습니다.
func (r *RecipientSet) HasAddressees() bool {
	return len(r.Users) > 0 || len(r.Parties) > 0 || len(r.Tags) > 0
}

// MergeRecipients 기본 수신자와 호출 시 지정된 수신자를 합집합으로 병합합니다.
//
// 각 목록은 기본 수신자의 순서를 우선으로 중복 없이 병합되며,
// 두 입력이 모두 비어있더라도 결과 목록은 nil이 아닌 빈 슬라이스입니다.
// nil 입력은 빈 수신자로 취급합니다.
func MergeRecipients(defaults, override *RecipientSet) *RecipientSet {
	if defaults == nil {
		defaults = &RecipientSet{}
	}
	if override == nil {
		override = &RecipientSet{}
	}

	return &RecipientSet{
		Users:            mergeUnique(defaults.Users, override.Users),
		Parties:          mergeUnique(defaults.Parties, override.Parties),
		Tags:             mergeUnique(defaults.Tags, override.Tags),
		MentionedUsers:   mergeUnique(defaults.MentionedUsers, override.MentionedUsers),
		MentionedMobiles: mergeUnique(defaults.MentionedMobiles, override.MentionedMobiles),
	}
}

// mergeUnique 두 목록을 첫 등장 순서를 유지하며 중복 없이 병합합니다.
func mergeUnique(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))

	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if v == "" {
				continue
			}
			if _, exists := seen[v]; exists {
				continue
			}
			seen[v] = struct{}{}
			merged = append(merged, v)
		}
	}

	return merged
}
