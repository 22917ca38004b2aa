package catalog

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// Shape 列舉結果的格式
type Shape string

const (
	ShapeRows    Shape = "rows"
	ShapeGrouped Shape = "grouped"
)

// Response 已辨識格式的列舉結果，只有 RowsResponse 與 GroupedResponse 兩種
type Response interface {
	Shape() Shape
	isResponse()
}

// Row (provider, model) 一列
type Row struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// RowsResponse 依序排列的 (provider, model)
type RowsResponse []Row

func (RowsResponse) Shape() Shape { return ShapeRows }
func (RowsResponse) isResponse()  {}

// Group 舊版格式中的一個 provider 與它的模型
type Group struct {
	Provider string   `json:"provider"`
	Models   []string `json:"models"`
}

// GroupedResponse 舊版 provider -> models 格式，保留來源順序
type GroupedResponse []Group

func (GroupedResponse) Shape() Shape { return ShapeGrouped }
func (GroupedResponse) isResponse()  {}

// Detect 在收到外部資料的邊界辨識格式。
//   - 序列：每個元素若是長度 >= 2 的序列，取 [0] 為 provider、[1] 為 model
//   - map：key 為 provider，value 為模型序列；Go map 沒有順序，因此依 key 排序
//   - []byte / json.RawMessage：交給 DetectJSON
//
// 其他型別（含 nil 與字串）回傳 ErrUnsupportedShape。
func Detect(raw any) (Response, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("%w: <nil>", ErrUnsupportedShape)
	case Response:
		return v, nil
	case json.RawMessage:
		return DetectJSON(v)
	case []byte:
		return DetectJSON(v)
	}

	rv, ok := indirect(reflect.ValueOf(raw))
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, raw)
	}
	switch {
	case isSequence(rv):
		return detectRows(rv), nil
	case rv.Kind() == reflect.Map:
		return detectGrouped(rv), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, raw)
}

// DetectJSON 以 gjson 辨識 JSON 文件：array 為 rows，object 為分組格式（保留文件順序）
func DetectJSON(data []byte) (Response, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrUnsupportedShape)
	}
	doc := gjson.ParseBytes(data)
	switch {
	case doc.IsArray():
		rows := RowsResponse{}
		doc.ForEach(func(_, row gjson.Result) bool {
			if !row.IsArray() {
				return true
			}
			items := row.Array()
			if len(items) >= 2 {
				rows = append(rows, Row{Provider: items[0].String(), Model: items[1].String()})
			}
			return true
		})
		return rows, nil
	case doc.IsObject():
		groups := GroupedResponse{}
		doc.ForEach(func(key, value gjson.Result) bool {
			if !value.IsArray() {
				return true
			}
			g := Group{Provider: key.String()}
			for _, id := range value.Array() {
				g.Models = append(g.Models, id.String())
			}
			groups = append(groups, g)
			return true
		})
		return groups, nil
	}
	return nil, fmt.Errorf("%w: json %s", ErrUnsupportedShape, doc.Type)
}

var rowType = reflect.TypeOf(Row{})

func detectRows(rv reflect.Value) RowsResponse {
	rows := make(RowsResponse, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el, ok := indirect(rv.Index(i))
		if !ok {
			continue
		}
		if el.Type() == rowType {
			rows = append(rows, el.Interface().(Row))
			continue
		}
		if !isSequence(el) || el.Len() < 2 {
			continue
		}
		rows = append(rows, Row{
			Provider: toString(el.Index(0)),
			Model:    toString(el.Index(1)),
		})
	}
	return rows
}

func detectGrouped(rv reflect.Value) GroupedResponse {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return toString(keys[i]) < toString(keys[j])
	})

	groups := make(GroupedResponse, 0, len(keys))
	for _, k := range keys {
		v, ok := indirect(rv.MapIndex(k))
		if !ok || !isSequence(v) {
			continue
		}
		g := Group{Provider: toString(k), Models: make([]string, 0, v.Len())}
		for i := 0; i < v.Len(); i++ {
			g.Models = append(g.Models, toString(v.Index(i)))
		}
		groups = append(groups, g)
	}
	return groups
}

// indirect 拆掉 interface 與指標；nil 回傳 false
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// 字串與 []byte 不視為序列
func isSequence(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

func toString(v reflect.Value) string {
	v, ok := indirect(v)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v.Interface())
	if err != nil {
		return fmt.Sprint(v.Interface())
	}
	return s
}
