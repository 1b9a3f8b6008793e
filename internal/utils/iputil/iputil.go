// Package iputil parses the address forms found in log origins and filter
// expressions.
// Package iputil 解析日志来源和过滤表达式中的地址形式。
package iputil

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseAddr parses an origin address. Besides plain IPv4/IPv6 literals it
// accepts "[::1]", "1.2.3.4:80" and "[::1]:80"; the port is dropped.
// IPv4-mapped IPv6 addresses are unmapped.
// ParseAddr 解析来源地址，支持带方括号和端口的形式，端口会被丢弃。
func ParseAddr(s string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(s); err == nil {
		return addr.Unmap(), nil
	}
	if ap, err := netip.ParseAddrPort(s); err == nil {
		return ap.Addr().Unmap(), nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		if addr, err := netip.ParseAddr(s[1 : len(s)-1]); err == nil {
			return addr.Unmap(), nil
		}
	}
	return netip.Addr{}, fmt.Errorf("invalid IP address: %q", s)
}

// ParsePrefix parses a CIDR string or a single IP.
// If single IP, returns the corresponding /32 or /128 prefix.
// The result is always masked, e.g. 10.1.2.3/8 -> 10.0.0.0/8.
// ParsePrefix 解析 CIDR 字符串或单个 IP。如果是单个 IP，则返回相应的 /32 或 /128 前缀。
func ParsePrefix(s string) (netip.Prefix, error) {
	if p, err := netip.ParsePrefix(s); err == nil {
		if p.Addr().Is4In6() {
			bits := p.Bits() - 96
			if bits < 0 {
				return netip.Prefix{}, fmt.Errorf("invalid CIDR or IP: %q", s)
			}
			p = netip.PrefixFrom(p.Addr().Unmap(), bits)
		}
		return p.Masked(), nil
	}

	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return netip.Prefix{}, fmt.Errorf("invalid CIDR or IP: %q", s)
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}
