// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"encoding/json"
	"fmt"
	"math"
)

// ToJSON encodes a given expression as a JSON tree.  Each node is an object
// with a "type" field identifying its kind.  Function calls are encoded by
// name alone.
func ToJSON(e Expr) ([]byte, error) {
	node, err := jsonOf(e)
	if err != nil {
		return nil, err
	}
	//
	return json.Marshal(node)
}

func jsonOf(e Expr) (map[string]any, error) {
	switch e := e.(type) {
	case *Add:
		return jsonOfBinary("add", "lhs", e.Lhs, "rhs", e.Rhs)
	case *Sub:
		return jsonOfBinary("sub", "lhs", e.Lhs, "rhs", e.Rhs)
	case *Mul:
		return jsonOfBinary("mul", "lhs", e.Lhs, "rhs", e.Rhs)
	case *Div:
		return jsonOfBinary("div", "lhs", e.Lhs, "rhs", e.Rhs)
	case *Exp:
		return jsonOfBinary("exp", "base", e.Base, "power", e.Power)
	case *Log:
		return jsonOfBinary("log", "base", e.Base, "arg", e.Arg)
	case *Variable:
		return map[string]any{"type": "var", "name": string(e.Name)}, nil
	case *Constant:
		// JSON has no representation for these
		if math.IsNaN(e.Value.Float()) || math.IsInf(e.Value.Float(), 0) {
			return map[string]any{"type": "const", "value": e.Value.String()}, nil
		}
		//
		return map[string]any{"type": "const", "value": e.Value.Float()}, nil
	case *Call:
		arg, err := jsonOf(e.Arg)
		if err != nil {
			return nil, err
		}
		//
		return map[string]any{"type": "call", "fn": e.Fn.Name, "arg": arg}, nil
	default:
		return nil, fmt.Errorf("unknown expression \"%T\"", e)
	}
}

func jsonOfBinary(kind string, lname string, lhs Expr, rname string, rhs Expr) (map[string]any, error) {
	l, err := jsonOf(lhs)
	if err != nil {
		return nil, err
	}
	//
	r, err := jsonOf(rhs)
	if err != nil {
		return nil, err
	}
	//
	return map[string]any{"type": kind, lname: l, rname: r}, nil
}
