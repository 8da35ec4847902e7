package history

import "github.com/mompack/mompack/pkg/model"

// getField reads the named field off the object. The second return is
// false when the object kind does not carry that field.
func getField(obj any, field string) (any, bool) {
	switch o := obj.(type) {
	case *model.Model:
		switch field {
		case FieldName:
			return o.Name, true
		case FieldSchemaVersionLabel:
			return o.SchemaVersionLabel, true
		}
	case *model.Entity:
		switch field {
		case FieldName:
			return o.Name, true
		case FieldClassName:
			return o.ClassName, true
		case FieldParentEntity:
			return o.ParentEntity, true
		case FieldIsAbstract:
			return o.IsAbstract, true
		case FieldUniquenessConstraints:
			return o.UniquenessConstraints, true
		case FieldCompoundIndexes:
			return o.CompoundIndexes, true
		case FieldUserInfo:
			return o.UserInfo, true
		}
	case *model.Attribute:
		switch field {
		case FieldName:
			return o.Name, true
		case FieldType:
			return o.Type, true
		case FieldDefaultValue:
			return o.DefaultValue, true
		case FieldIsOptional:
			return o.IsOptional, true
		case FieldIsTransient:
			return o.IsTransient, true
		case FieldIsIndexed:
			return o.IsIndexed, true
		case FieldUserInfo:
			return o.UserInfo, true
		}
	case *model.Relationship:
		switch field {
		case FieldName:
			return o.Name, true
		case FieldDestinationEntity:
			return o.DestinationEntity, true
		case FieldInverseRelationship:
			return o.InverseRelationship, true
		case FieldDeleteRule:
			return o.DeleteRule, true
		case FieldIsOptional:
			return o.IsOptional, true
		case FieldIsTransient:
			return o.IsTransient, true
		case FieldIsToMany:
			return o.IsToMany, true
		case FieldIsOrdered:
			return o.IsOrdered, true
		case FieldMinCount:
			return o.MinCount, true
		case FieldMaxCount:
			return o.MaxCount, true
		case FieldUserInfo:
			return o.UserInfo, true
		}
	case *model.FetchedProperty:
		switch field {
		case FieldName:
			return o.Name, true
		case FieldPredicate:
			return o.Predicate, true
		case FieldFetchLimit:
			return o.FetchLimit, true
		case FieldUserInfo:
			return o.UserInfo, true
		}
	case *model.Configuration:
		switch field {
		case FieldName:
			return o.Name, true
		case FieldMemberEntities:
			return o.MemberEntities, true
		case FieldUserInfo:
			return o.UserInfo, true
		}
	}
	return nil, false
}

// setField writes the named field on the object. Returns false, leaving
// the object untouched, when the object kind does not carry the field or
// the value has the wrong type.
func setField(obj any, field string, value any) bool {
	switch o := obj.(type) {
	case *model.Model:
		switch field {
		case FieldName:
			return assignString(&o.Name, value)
		case FieldSchemaVersionLabel:
			return assignString(&o.SchemaVersionLabel, value)
		}
	case *model.Entity:
		switch field {
		case FieldName:
			return assignString(&o.Name, value)
		case FieldClassName:
			return assignString(&o.ClassName, value)
		case FieldParentEntity:
			return assignString(&o.ParentEntity, value)
		case FieldIsAbstract:
			return assignBool(&o.IsAbstract, value)
		case FieldUniquenessConstraints:
			return assignNameGroups(&o.UniquenessConstraints, value)
		case FieldCompoundIndexes:
			return assignNameGroups(&o.CompoundIndexes, value)
		case FieldUserInfo:
			return assignUserInfo(&o.UserInfo, value)
		}
	case *model.Attribute:
		switch field {
		case FieldName:
			return assignString(&o.Name, value)
		case FieldType:
			return assignString(&o.Type, value)
		case FieldDefaultValue:
			return assignStringPtr(&o.DefaultValue, value)
		case FieldIsOptional:
			return assignBool(&o.IsOptional, value)
		case FieldIsTransient:
			return assignBool(&o.IsTransient, value)
		case FieldIsIndexed:
			return assignBool(&o.IsIndexed, value)
		case FieldUserInfo:
			return assignUserInfo(&o.UserInfo, value)
		}
	case *model.Relationship:
		switch field {
		case FieldName:
			return assignString(&o.Name, value)
		case FieldDestinationEntity:
			return assignString(&o.DestinationEntity, value)
		case FieldInverseRelationship:
			return assignString(&o.InverseRelationship, value)
		case FieldDeleteRule:
			return assignString(&o.DeleteRule, value)
		case FieldIsOptional:
			return assignBool(&o.IsOptional, value)
		case FieldIsTransient:
			return assignBool(&o.IsTransient, value)
		case FieldIsToMany:
			return assignBool(&o.IsToMany, value)
		case FieldIsOrdered:
			return assignBool(&o.IsOrdered, value)
		case FieldMinCount:
			return assignIntPtr(&o.MinCount, value)
		case FieldMaxCount:
			return assignIntPtr(&o.MaxCount, value)
		case FieldUserInfo:
			return assignUserInfo(&o.UserInfo, value)
		}
	case *model.FetchedProperty:
		switch field {
		case FieldName:
			return assignString(&o.Name, value)
		case FieldPredicate:
			return assignString(&o.Predicate, value)
		case FieldFetchLimit:
			return assignIntPtr(&o.FetchLimit, value)
		case FieldUserInfo:
			return assignUserInfo(&o.UserInfo, value)
		}
	case *model.Configuration:
		switch field {
		case FieldName:
			return assignString(&o.Name, value)
		case FieldMemberEntities:
			return assignMembers(&o.MemberEntities, value)
		case FieldUserInfo:
			return assignUserInfo(&o.UserInfo, value)
		}
	}
	return false
}

func assignString(dst *string, value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	*dst = v
	return true
}

func assignBool(dst *bool, value any) bool {
	v, ok := value.(bool)
	if !ok {
		return false
	}
	*dst = v
	return true
}

// assignStringPtr accepts *string and untyped nil, so callers can clear
// an optional field without constructing a typed nil pointer.
func assignStringPtr(dst **string, value any) bool {
	if value == nil {
		*dst = nil
		return true
	}
	v, ok := value.(*string)
	if !ok {
		return false
	}
	*dst = v
	return true
}

func assignIntPtr(dst **int, value any) bool {
	if value == nil {
		*dst = nil
		return true
	}
	v, ok := value.(*int)
	if !ok {
		return false
	}
	*dst = v
	return true
}

func assignUserInfo(dst *map[string]string, value any) bool {
	if value == nil {
		*dst = nil
		return true
	}
	v, ok := value.(map[string]string)
	if !ok {
		return false
	}
	*dst = v
	return true
}

func assignNameGroups(dst *[][]string, value any) bool {
	if value == nil {
		*dst = nil
		return true
	}
	v, ok := value.([][]string)
	if !ok {
		return false
	}
	*dst = v
	return true
}

func assignMembers(dst *[]string, value any) bool {
	if value == nil {
		*dst = nil
		return true
	}
	v, ok := value.([]string)
	if !ok {
		return false
	}
	*dst = v
	return true
}
